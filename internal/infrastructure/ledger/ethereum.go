package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sandy191020/LexConnect/config"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/sirupsen/logrus"
)

// ABI of the CertificateStorage contract deployed alongside the platform.
const certificateStorageABI = `[
	{"type":"function","name":"storeCertificate","stateMutability":"nonpayable","inputs":[{"name":"certificateHash","type":"string"},{"name":"metadata","type":"string"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"verifyCertificate","stateMutability":"view","inputs":[{"name":"certificateHash","type":"string"}],"outputs":[{"name":"exists","type":"bool"},{"name":"index","type":"uint256"}]}
]`

// EthereumLedger anchors hashes on an EVM-compatible chain over JSON-RPC.
// All calls run under the configured timeout since they cross a network
// boundary the rest of the core does not.
type EthereumLedger struct {
	client   *ethclient.Client
	contract *bind.BoundContract
	opts     *bind.TransactOpts
	timeout  time.Duration
	log      *logrus.Logger
}

func NewEthereumLedger(cfg config.LedgerConfig, log *logrus.Logger) (*EthereumLedger, error) {
	client, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial ledger RPC: %w", err)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid ledger private key: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()
	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query chain id: %w", err)
	}

	opts, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to build transactor: %w", err)
	}

	parsed, err := abi.JSON(strings.NewReader(certificateStorageABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse contract ABI: %w", err)
	}

	address := common.HexToAddress(cfg.ContractAddress)
	contract := bind.NewBoundContract(address, parsed, client, client, client)

	return &EthereumLedger{
		client:   client,
		contract: contract,
		opts:     opts,
		timeout:  cfg.Timeout,
		log:      log,
	}, nil
}

func (l *EthereumLedger) RecordHash(ctx context.Context, hash string, metadata string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	opts := *l.opts
	opts.Context = ctx

	tx, err := l.contract.Transact(&opts, "storeCertificate", hash, metadata)
	if err != nil {
		l.log.Warnf("Failed to submit ledger transaction: %+v", err)
		return "", ErrUnavailable
	}

	receipt, err := bind.WaitMined(ctx, l.client, tx)
	if err != nil {
		l.log.Warnf("Failed waiting for ledger transaction %s: %+v", tx.Hash().Hex(), err)
		return "", ErrUnavailable
	}

	return receipt.TxHash.Hex(), nil
}

func (l *EthereumLedger) Exists(ctx context.Context, hash string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	var out []interface{}
	err := l.contract.Call(&bind.CallOpts{Context: ctx}, &out, "verifyCertificate", hash)
	if err != nil {
		l.log.Warnf("Failed to query ledger for hash %s: %+v", hash, err)
		return false, ErrUnavailable
	}
	if len(out) == 0 {
		return false, nil
	}

	exists, _ := out[0].(bool)
	return exists, nil
}

func (l *EthereumLedger) Close() {
	l.client.Close()
}

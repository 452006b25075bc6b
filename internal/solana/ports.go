package solana

import (
	"context"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// RPCClient is the subset of *rpc.Client the service talks to.
//
//counterfeiter:generate -o fake -fake-name RPCClient . RPCClient
type RPCClient interface {
	GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error)
	SendRawTransactionWithOpts(ctx context.Context, rawTx []byte, opts rpc.TransactionOpts) (solanago.Signature, error)
	GetSignatureStatuses(ctx context.Context, searchTransactionHistory bool, transactionSignatures ...solanago.Signature) (*rpc.GetSignatureStatusesResult, error)
}

package solana_test

import (
	"context"
	"encoding/base64"
	"errors"
	"solpay/internal/solana"
	"solpay/internal/solana/fake"

	bin "github.com/gagliardetto/binary"
	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func mustKey() solanago.PrivateKey {
	key, err := solanago.NewRandomPrivateKey()
	Expect(err).NotTo(HaveOccurred())
	return key
}

// transferTx builds a transfer from sender to receiver paid by payer and signed by the sender only.
func transferTx(payer solanago.PublicKey, sender solanago.PrivateKey, receiver solanago.PublicKey, versioned bool) *solanago.Transaction {
	tx, err := solanago.NewTransaction(
		[]solanago.Instruction{
			system.NewTransferInstruction(1_000_000, sender.PublicKey(), receiver).Build(),
		},
		solanago.Hash{9, 9, 9},
		solanago.TransactionPayer(payer),
	)
	Expect(err).NotTo(HaveOccurred())

	if versioned {
		tx.Message.SetVersion(solanago.MessageVersionV0)
	}

	message, err := tx.Message.MarshalBinary()
	Expect(err).NotTo(HaveOccurred())
	senderSig, err := sender.Sign(message)
	Expect(err).NotTo(HaveOccurred())

	tx.Signatures = make([]solanago.Signature, tx.Message.Header.NumRequiredSignatures)
	tx.Signatures[1] = senderSig

	return tx
}

func encodeTx(tx *solanago.Transaction) string {
	raw, err := tx.MarshalBinary()
	Expect(err).NotTo(HaveOccurred())
	return base64.StdEncoding.EncodeToString(raw)
}

func decodeSent(raw []byte) *solanago.Transaction {
	tx, err := solanago.TransactionFromDecoder(bin.NewBinDecoder(raw))
	Expect(err).NotTo(HaveOccurred())
	return tx
}

var _ = Describe("Service", func() {
	var (
		service    *solana.Service
		fakeClient *fake.RPCClient
		feePayer   solanago.PrivateKey
		sender     solanago.PrivateKey
		receiver   solanago.PublicKey
		ctx        context.Context
		testErr    error
		freshHash  solanago.Hash
		sentSig    solanago.Signature
	)

	BeforeEach(func() {
		fakeClient = new(fake.RPCClient)
		feePayer = mustKey()
		sender = mustKey()
		receiver = mustKey().PublicKey()
		ctx = context.Background()
		testErr = errors.New("test error")
		freshHash = solanago.Hash{7, 7, 7}
		sentSig = solanago.Signature{1, 2, 3}

		service = solana.NewService(zap.NewNop().Sugar(), fakeClient, feePayer, 0, 0)

		fakeClient.GetLatestBlockhashReturns(&rpc.GetLatestBlockhashResult{
			Value: &rpc.LatestBlockhashResult{Blockhash: freshHash, LastValidBlockHeight: 100},
		}, nil)
		fakeClient.SendRawTransactionWithOptsReturns(sentSig, nil)
	})

	Describe("FeePayer", func() {
		It("should return the public key of the configured key", func() {
			Expect(service.FeePayer()).To(Equal(feePayer.PublicKey()))
		})
	})

	Describe("Submit", func() {
		var (
			encoded  string
			encoding solana.Encoding
			sig      solanago.Signature
			err      error
			clientTx *solanago.Transaction
		)

		BeforeEach(func() {
			encoding = solana.EncodingBase64
		})

		JustBeforeEach(func() {
			sig, err = service.Submit(ctx, encoded, encoding)
		})

		When("a legacy transaction names the server fee payer", func() {
			BeforeEach(func() {
				clientTx = transferTx(feePayer.PublicKey(), sender, receiver, false)
				encoded = encodeTx(clientTx)
			})

			It("should return the broadcast signature", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(sig).To(Equal(sentSig))
			})

			It("should fetch a finalized blockhash and attach it", func() {
				Expect(fakeClient.GetLatestBlockhashCallCount()).To(Equal(1))
				_, commitment := fakeClient.GetLatestBlockhashArgsForCall(0)
				Expect(commitment).To(Equal(rpc.CommitmentFinalized))

				_, raw, _ := fakeClient.SendRawTransactionWithOptsArgsForCall(0)
				sent := decodeSent(raw)
				Expect(sent.Message.RecentBlockhash).To(Equal(freshHash))
			})

			It("should add a valid fee payer signature and keep the client signature", func() {
				_, raw, _ := fakeClient.SendRawTransactionWithOptsArgsForCall(0)
				sent := decodeSent(raw)

				message, mErr := sent.Message.MarshalBinary()
				Expect(mErr).NotTo(HaveOccurred())
				Expect(sent.Signatures).To(HaveLen(2))
				Expect(sent.Signatures[0].Verify(feePayer.PublicKey(), message)).To(BeTrue())
				Expect(sent.Signatures[1]).To(Equal(clientTx.Signatures[1]))
			})

			It("should broadcast with preflight at confirmed commitment", func() {
				Expect(fakeClient.SendRawTransactionWithOptsCallCount()).To(Equal(1))
				_, _, opts := fakeClient.SendRawTransactionWithOptsArgsForCall(0)
				Expect(opts.SkipPreflight).To(BeFalse())
				Expect(opts.PreflightCommitment).To(Equal(rpc.CommitmentConfirmed))
			})
		})

		When("a versioned transaction names the server fee payer", func() {
			BeforeEach(func() {
				clientTx = transferTx(feePayer.PublicKey(), sender, receiver, true)
				encoded = encodeTx(clientTx)
			})

			It("should sign the message in place without a new blockhash", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeClient.GetLatestBlockhashCallCount()).To(Equal(0))

				_, raw, _ := fakeClient.SendRawTransactionWithOptsArgsForCall(0)
				sent := decodeSent(raw)
				Expect(sent.Message.IsVersioned()).To(BeTrue())
				Expect(sent.Message.RecentBlockhash).To(Equal(clientTx.Message.RecentBlockhash))

				message, mErr := sent.Message.MarshalBinary()
				Expect(mErr).NotTo(HaveOccurred())
				original, oErr := clientTx.Message.MarshalBinary()
				Expect(oErr).NotTo(HaveOccurred())
				Expect(message).To(Equal(original))

				Expect(sent.Signatures[0].Verify(feePayer.PublicKey(), message)).To(BeTrue())
				Expect(sent.Signatures[1].Verify(sender.PublicKey(), message)).To(BeTrue())
			})
		})

		When("the transaction names another fee payer", func() {
			BeforeEach(func() {
				encoded = encodeTx(transferTx(sender.PublicKey(), sender, receiver, false))
			})

			It("should reject it without touching the network", func() {
				Expect(err).To(MatchError(solana.ErrFeePayerMismatch))
				Expect(sig).To(Equal(solanago.Signature{}))
				Expect(fakeClient.GetLatestBlockhashCallCount()).To(Equal(0))
				Expect(fakeClient.SendRawTransactionWithOptsCallCount()).To(Equal(0))
			})
		})

		When("the payload is not valid base64", func() {
			BeforeEach(func() {
				encoded = "not base64!"
			})

			It("should return a decode error", func() {
				Expect(err).To(MatchError(solana.ErrDecode))
				Expect(fakeClient.SendRawTransactionWithOptsCallCount()).To(Equal(0))
			})
		})

		When("the payload decodes to bytes that are not a transaction", func() {
			BeforeEach(func() {
				encoded = base64.StdEncoding.EncodeToString([]byte{0x05, 0x01})
			})

			It("should return a format error", func() {
				Expect(err).To(MatchError(solana.ErrFormat))
				Expect(fakeClient.SendRawTransactionWithOptsCallCount()).To(Equal(0))
			})
		})

		When("the payload carries trailing bytes", func() {
			BeforeEach(func() {
				raw, mErr := transferTx(feePayer.PublicKey(), sender, receiver, false).MarshalBinary()
				Expect(mErr).NotTo(HaveOccurred())
				encoded = base64.StdEncoding.EncodeToString(append(raw, 0x00, 0x01))
			})

			It("should return a format error", func() {
				Expect(err).To(MatchError(solana.ErrFormat))
			})
		})

		When("the latest blockhash cannot be fetched", func() {
			BeforeEach(func() {
				encoded = encodeTx(transferTx(feePayer.PublicKey(), sender, receiver, false))
				fakeClient.GetLatestBlockhashReturns(nil, testErr)
			})

			It("should return the error without broadcasting", func() {
				Expect(err).To(MatchError(testErr))
				Expect(err.Error()).To(ContainSubstring("get latest blockhash"))
				Expect(fakeClient.SendRawTransactionWithOptsCallCount()).To(Equal(0))
			})
		})

		When("the node rejects the transaction in preflight", func() {
			BeforeEach(func() {
				encoded = encodeTx(transferTx(feePayer.PublicKey(), sender, receiver, false))
				fakeClient.SendRawTransactionWithOptsReturns(solanago.Signature{}, &jsonrpc.RPCError{
					Code:    -32002,
					Message: "Transaction simulation failed: Attempt to debit an account but found no record of a prior credit.",
					Data: map[string]interface{}{
						"logs": []interface{}{"Program 11111111111111111111111111111111 invoke [1]", "insufficient lamports"},
					},
				})
			})

			It("should return a broadcast error with the simulation logs", func() {
				Expect(err).To(MatchError(solana.ErrBroadcast))

				var broadcastErr *solana.BroadcastError
				Expect(errors.As(err, &broadcastErr)).To(BeTrue())
				Expect(broadcastErr.Logs).To(ConsistOf("Program 11111111111111111111111111111111 invoke [1]", "insufficient lamports"))
			})
		})

		When("the node cannot be reached", func() {
			BeforeEach(func() {
				encoded = encodeTx(transferTx(feePayer.PublicKey(), sender, receiver, false))
				fakeClient.SendRawTransactionWithOptsReturns(solanago.Signature{}, testErr)
			})

			It("should return a transport error that is not a broadcast rejection", func() {
				Expect(err).To(MatchError(testErr))
				Expect(errors.Is(err, solana.ErrBroadcast)).To(BeFalse())
			})
		})
	})
})

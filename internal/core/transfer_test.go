package core_test

import (
	"context"
	"errors"
	"fmt"
	"solpay/internal/core"
	"solpay/internal/core/fake"
	"solpay/internal/repository"
	"solpay/internal/solana"

	solanago "github.com/gagliardetto/solana-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("SubmitTransfer", func() {
	var (
		fakeRepo   *fake.Repository
		fakeSolana *fake.SolanaService
		ledger     *core.Ledger
		ctx        context.Context
		msg        core.TransferMessage
		signature  solanago.Signature
		rows       map[string]repository.Transaction
		result     core.TransferResult
		err        error
		fakeErr    error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeSolana = new(fake.SolanaService)
		ledger = core.NewLedger(zap.NewNop().Sugar(), fakeRepo, fakeSolana, "solana:mainnet-beta")
		ctx = context.Background()
		fakeErr = errors.New("fake error")
		signature = solanago.Signature{8, 8, 8}

		msg = core.TransferMessage{
			Transaction: "AQID",
			Encoding:    solana.EncodingBase64,
			SenderID:    "sender-1",
			ReceiverID:  "receiver-1",
			Amount:      "0.5",
			Tokens:      []core.TokenMovement{{Amount: "0.5", TokenAddress: "So11111111111111111111111111111111111111112"}},
		}

		rows = map[string]repository.Transaction{}
		fakeRepo.UserExistsReturns(true, nil)
		fakeRepo.TransactionExistsStub = func(_ context.Context, hash string) (bool, error) {
			_, ok := rows[hash]
			return ok, nil
		}
		fakeRepo.SaveTransactionStub = func(_ context.Context, tx repository.Transaction) error {
			if _, ok := rows[tx.TransactionHash]; ok {
				return repository.ErrDuplicateTransaction
			}
			rows[tx.TransactionHash] = tx
			return nil
		}

		fakeSolana.SubmitReturns(signature, nil)
		fakeSolana.AwaitFinalizedReturns(solana.Confirmation{Signature: signature, Slot: 99}, nil)
	})

	JustBeforeEach(func() {
		result, err = ledger.SubmitTransfer(ctx, msg)
	})

	When("the transaction finalizes without error", func() {
		It("should succeed with the signature", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Success).To(BeTrue())
			Expect(result.Outcome).To(Equal(core.OutcomeCompleted))
			Expect(result.Message).To(Equal("Transfer completed"))
			Expect(result.Signature).To(Equal(signature.String()))
			Expect(result.Entry).NotTo(BeNil())
		})

		It("should write exactly one completed ledger entry", func() {
			Expect(rows).To(HaveLen(1))
			entry := rows[signature.String()]
			Expect(entry.Status).To(Equal(repository.StatusCompleted))
			Expect(entry.CompletedAt).NotTo(BeNil())
			Expect(entry.Chain).To(Equal("solana:mainnet-beta"))
			Expect(entry.SenderID).To(Equal("sender-1"))
			Expect(entry.ReceiverID).To(Equal("receiver-1"))
			Expect(entry.Amount).To(Equal("0.5"))
			Expect(entry.Tokens).To(HaveLen(1))
		})

		It("should submit then await the returned signature", func() {
			_, encoded, encoding := fakeSolana.SubmitArgsForCall(0)
			Expect(encoded).To(Equal("AQID"))
			Expect(encoding).To(Equal(solana.EncodingBase64))

			Expect(fakeSolana.AwaitFinalizedCallCount()).To(Equal(1))
			_, awaited := fakeSolana.AwaitFinalizedArgsForCall(0)
			Expect(awaited).To(Equal(signature))
		})
	})

	When("the same transaction is submitted again", func() {
		It("should never produce a second ledger row", func() {
			Expect(result.Success).To(BeTrue())

			again, err := ledger.SubmitTransfer(ctx, msg)
			Expect(err).NotTo(HaveOccurred())
			Expect(again.Message).To(Equal("Transaction already exists"))
			Expect(again.Reason).To(MatchError(core.ErrDuplicateTransaction))
			Expect(rows).To(HaveLen(1))
		})
	})

	When("the transaction finalizes with an on-chain error", func() {
		BeforeEach(func() {
			fakeSolana.AwaitFinalizedReturns(solana.Confirmation{
				Signature: signature,
				Slot:      99,
				Err:       map[string]interface{}{"InstructionError": []interface{}{0, map[string]interface{}{"Custom": 1}}},
			}, nil)
		})

		It("should fail with the signature and write nothing", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Success).To(BeFalse())
			Expect(result.Outcome).To(Equal(core.OutcomeFailed))
			Expect(result.Message).To(Equal("Transfer failed"))
			Expect(result.Signature).To(Equal(signature.String()))
			Expect(result.Reason).To(MatchError(core.ErrOnChainFailure))
			Expect(rows).To(BeEmpty())
			Expect(fakeRepo.SaveTransactionCallCount()).To(Equal(0))
		})
	})

	When("finalization is not observed in time", func() {
		BeforeEach(func() {
			fakeSolana.AwaitFinalizedReturns(solana.Confirmation{}, fmt.Errorf("%w: budget spent", solana.ErrConfirmationTimeout))
		})

		It("should report an unknown outcome, not a failure", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Success).To(BeFalse())
			Expect(result.Outcome).To(Equal(core.OutcomeUnknown))
			Expect(result.Message).NotTo(Equal("Transfer failed"))
			Expect(result.Signature).To(Equal(signature.String()))
			Expect(result.Reason).To(MatchError(solana.ErrConfirmationTimeout))
			Expect(rows).To(BeEmpty())
		})
	})

	When("the node rejects the broadcast", func() {
		BeforeEach(func() {
			fakeSolana.SubmitReturns(solanago.Signature{}, &solana.BroadcastError{
				Err:  errors.New("simulation failed"),
				Logs: []string{"Program log: insufficient funds"},
			})
		})

		It("should pass the simulation logs on", func() {
			Expect(result.Logs).To(ConsistOf("Program log: insufficient funds"))
			Expect(fakeSolana.AwaitFinalizedCallCount()).To(Equal(0))
			Expect(rows).To(BeEmpty())
		})
	})

	When("submission fails for an infrastructure reason", func() {
		BeforeEach(func() {
			fakeSolana.SubmitReturns(solanago.Signature{}, fakeErr)
		})

		It("should return the error", func() {
			Expect(err).To(MatchError(fakeErr))
			Expect(err.Error()).To(ContainSubstring("submit transaction"))
			Expect(rows).To(BeEmpty())
		})
	})

	When("polling fails with something other than a timeout", func() {
		BeforeEach(func() {
			fakeSolana.AwaitFinalizedReturns(solana.Confirmation{}, fakeErr)
		})

		It("should return the error", func() {
			Expect(err).To(MatchError(fakeErr))
			Expect(rows).To(BeEmpty())
		})
	})

	When("the sender does not exist", func() {
		BeforeEach(func() {
			fakeRepo.UserExistsReturnsOnCall(0, false, nil)
		})

		It("should reject the transfer before broadcasting", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Success).To(BeFalse())
			Expect(result.Outcome).To(Equal(core.OutcomeRejected))
			Expect(result.Message).To(Equal("Sender user not found"))
			Expect(fakeSolana.SubmitCallCount()).To(Equal(0))
		})
	})

	When("the receiver does not exist", func() {
		BeforeEach(func() {
			fakeRepo.UserExistsReturnsOnCall(1, false, nil)
		})

		It("should reject the transfer before broadcasting", func() {
			Expect(result.Message).To(Equal("Receiver user not found"))
			Expect(fakeSolana.SubmitCallCount()).To(Equal(0))
		})
	})

	When("the caller goes away after the broadcast", func() {
		BeforeEach(func() {
			var cancel context.CancelFunc
			ctx, cancel = context.WithCancel(context.Background())

			fakeSolana.SubmitStub = func(context.Context, string, solana.Encoding) (solanago.Signature, error) {
				cancel()
				return signature, nil
			}
			fakeSolana.AwaitFinalizedStub = func(ctx context.Context, sig solanago.Signature) (solana.Confirmation, error) {
				if ctx.Err() != nil {
					return solana.Confirmation{}, fmt.Errorf("%w: %w", solana.ErrConfirmationTimeout, ctx.Err())
				}
				return solana.Confirmation{Signature: sig, Slot: 99}, nil
			}
			saveTransaction := fakeRepo.SaveTransactionStub
			fakeRepo.SaveTransactionStub = func(ctx context.Context, tx repository.Transaction) error {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return saveTransaction(ctx, tx)
			}
		})

		It("should still wait for finalization and record the transfer", func() {
			Expect(ctx.Err()).To(MatchError(context.Canceled))
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Success).To(BeTrue())
			Expect(result.Outcome).To(Equal(core.OutcomeCompleted))
			Expect(result.Entry).NotTo(BeNil())
			Expect(rows).To(HaveKey(signature.String()))
			Expect(rows[signature.String()].Status).To(Equal(repository.StatusCompleted))
		})
	})

	When("the ledger write fails after finalization", func() {
		BeforeEach(func() {
			fakeRepo.SaveTransactionStub = nil
			fakeRepo.SaveTransactionReturns(fakeErr)
		})

		It("should still report success with the signature", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Success).To(BeTrue())
			Expect(result.Outcome).To(Equal(core.OutcomeCompleted))
			Expect(result.Signature).To(Equal(signature.String()))
			Expect(result.Entry).To(BeNil())
			Expect(result.Reason).To(MatchError(fakeErr))
		})
	})
})

var _ = Describe("SubmitTransfer rejections", func() {
	DescribeTable("submission rejections write nothing",
		func(submitErr error, message string) {
			fakeRepo := new(fake.Repository)
			fakeRepo.UserExistsReturns(true, nil)
			fakeSolana := new(fake.SolanaService)
			fakeSolana.SubmitReturns(solanago.Signature{}, submitErr)
			ledger := core.NewLedger(zap.NewNop().Sugar(), fakeRepo, fakeSolana, "solana:mainnet-beta")

			result, err := ledger.SubmitTransfer(context.Background(), core.TransferMessage{
				Transaction: "AQID",
				Encoding:    solana.EncodingBase64,
				SenderID:    "sender-1",
				ReceiverID:  "receiver-1",
				Amount:      "1",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Success).To(BeFalse())
			Expect(result.Outcome).To(Equal(core.OutcomeRejected))
			Expect(result.Message).To(Equal(message))
			Expect(result.Signature).To(BeEmpty())
			Expect(result.Reason).To(MatchError(submitErr))
			Expect(fakeSolana.AwaitFinalizedCallCount()).To(Equal(0))
			Expect(fakeRepo.SaveTransactionCallCount()).To(Equal(0))
		},
		Entry("decode", fmt.Errorf("%w: bad base64", solana.ErrDecode), "Invalid transaction encoding"),
		Entry("format", fmt.Errorf("%w: short message", solana.ErrFormat), "Unrecognized transaction format"),
		Entry("fee payer", fmt.Errorf("%w: got x", solana.ErrFeePayerMismatch), "Transaction fee payer does not match the server fee payer"),
		Entry("broadcast", &solana.BroadcastError{Err: errors.New("simulation failed"), Logs: []string{"log"}}, "Transaction rejected by the network"),
	)
})

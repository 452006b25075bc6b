package core_test

import (
	"context"
	"errors"
	"solpay/internal/core"
	"solpay/internal/core/fake"
	"solpay/internal/repository"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Ledger", func() {
	var (
		fakeRepo *fake.Repository
		ledger   *core.Ledger
		ctx      context.Context
		fakeErr  error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		ledger = core.NewLedger(zap.NewNop().Sugar(), fakeRepo, new(fake.SolanaService), "solana:devnet")
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("CreateUser", func() {
		var (
			user core.UserRecord
			err  error
		)

		JustBeforeEach(func() {
			user, err = ledger.CreateUser(ctx, "+15551234567")
		})

		When("the phone number is new", func() {
			It("should store a user with a fresh canonical id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(uuid.Validate(user.ID)).To(Succeed())
				Expect(user.PhoneNumber).To(Equal("+15551234567"))
				Expect(user.WalletAddresses).To(BeEmpty())
				Expect(user.CreatedAt).NotTo(BeZero())

				_, stored := fakeRepo.CreateUserArgsForCall(0)
				Expect(stored.ID).To(Equal(user.ID))
				Expect(stored.Handle).To(BeNil())
			})
		})

		When("the phone number is taken", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.ErrUserExists)
			})

			It("should return user exists error", func() {
				Expect(err).To(MatchError(core.ErrUserExists))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(fakeErr)
			})

			It("should return the wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err.Error()).To(Equal("create user: fake error"))
			})
		})
	})

	Describe("GetUser", func() {
		It("should map the stored user", func() {
			handle := "alice"
			fakeRepo.GetUserByIDReturns(repository.User{
				ID:              "user-1",
				PhoneNumber:     "+1555",
				Handle:          &handle,
				WalletAddresses: []string{"wallet"},
				Currencies:      []string{"USDC"},
			}, nil)

			user, err := ledger.GetUser(ctx, "user-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal("user-1"))
			Expect(*user.Handle).To(Equal("alice"))
			Expect(user.WalletAddresses).To(ConsistOf("wallet"))
			Expect(user.Currencies).To(ConsistOf("USDC"))
		})

		It("should return user not found", func() {
			fakeRepo.GetUserByIDReturns(repository.User{}, repository.ErrUserNotFound)

			_, err := ledger.GetUser(ctx, "user-1")
			Expect(err).To(MatchError(core.ErrUserNotFound))
		})
	})

	Describe("UpdateUser", func() {
		var (
			patch core.UserPatch
			user  core.UserRecord
			err   error
		)

		BeforeEach(func() {
			handle := "alice"
			patch = core.UserPatch{Handle: &handle, WalletAddresses: []string{"wallet"}}
			fakeRepo.GetUserByIDReturns(repository.User{ID: "user-1", Handle: &handle, WalletAddresses: []string{"wallet"}}, nil)
		})

		JustBeforeEach(func() {
			user, err = ledger.UpdateUser(ctx, "user-1", patch)
		})

		When("the update succeeds", func() {
			It("should pass the patch through and return the stored user", func() {
				Expect(err).NotTo(HaveOccurred())
				_, id, update := fakeRepo.UpdateUserArgsForCall(0)
				Expect(id).To(Equal("user-1"))
				Expect(*update.Handle).To(Equal("alice"))
				Expect(update.WalletAddresses).To(ConsistOf("wallet"))
				Expect(update.Currencies).To(BeNil())
				Expect(user.ID).To(Equal("user-1"))
			})
		})

		When("the handle is taken", func() {
			BeforeEach(func() {
				fakeRepo.UpdateUserReturns(repository.ErrUserExists)
			})

			It("should return user exists error", func() {
				Expect(err).To(MatchError(core.ErrUserExists))
				Expect(fakeRepo.GetUserByIDCallCount()).To(Equal(0))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.UpdateUserReturns(repository.ErrUserNotFound)
			})

			It("should return user not found", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})
	})

	Describe("ListUsers", func() {
		It("should return one page with the total", func() {
			fakeRepo.ListUsersReturns([]repository.User{{ID: "a"}, {ID: "b"}}, 7, nil)

			page, err := ledger.ListUsers(ctx, 2, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Items).To(HaveLen(2))
			Expect(page.Total).To(Equal(int64(7)))
			Expect(page.Offset).To(Equal(2))
			Expect(page.Limit).To(Equal(2))

			_, offset, limit := fakeRepo.ListUsersArgsForCall(0)
			Expect(offset).To(Equal(2))
			Expect(limit).To(Equal(2))
		})

		It("should return store errors", func() {
			fakeRepo.ListUsersReturns(nil, 0, fakeErr)

			_, err := ledger.ListUsers(ctx, 0, 10)
			Expect(err).To(MatchError(fakeErr))
		})
	})

	Describe("GetTransaction", func() {
		It("should map the stored entry", func() {
			fakeRepo.GetTransactionByHashReturns(repository.Transaction{
				TransactionHash: "hash",
				Tokens:          []repository.TokenMovement{{Amount: "1", TokenAddress: "mint"}},
				Status:          repository.StatusCompleted,
			}, nil)

			record, err := ledger.GetTransaction(ctx, "hash")
			Expect(err).NotTo(HaveOccurred())
			Expect(record.TransactionHash).To(Equal("hash"))
			Expect(record.Tokens).To(Equal([]core.TokenMovement{{Amount: "1", TokenAddress: "mint"}}))
		})

		It("should return transaction not found", func() {
			fakeRepo.GetTransactionByHashReturns(repository.Transaction{}, repository.ErrTransactionNotFound)

			_, err := ledger.GetTransaction(ctx, "hash")
			Expect(err).To(MatchError(core.ErrTransactionNotFound))
		})
	})

	Describe("GetTransactions", func() {
		It("should skip the store for an empty request", func() {
			records, err := ledger.GetTransactions(ctx, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(BeEmpty())
			Expect(fakeRepo.GetTransactionsByHashCallCount()).To(Equal(0))
		})

		It("should return the entries found", func() {
			fakeRepo.GetTransactionsByHashReturns([]repository.Transaction{{TransactionHash: "a"}}, nil)

			records, err := ledger.GetTransactions(ctx, []string{"a", "b"})
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			_, hashes := fakeRepo.GetTransactionsByHashArgsForCall(0)
			Expect(hashes).To(Equal([]string{"a", "b"}))
		})
	})

	Describe("ListUserTransactions", func() {
		When("the user exists", func() {
			It("should return a page of entries", func() {
				fakeRepo.UserExistsReturns(true, nil)
				fakeRepo.ListUserTransactionsReturns([]repository.Transaction{{TransactionHash: "a"}}, 1, nil)

				page, err := ledger.ListUserTransactions(ctx, "user-1", 0, 20)
				Expect(err).NotTo(HaveOccurred())
				Expect(page.Items).To(HaveLen(1))
				Expect(page.Total).To(Equal(int64(1)))

				_, userID, offset, limit := fakeRepo.ListUserTransactionsArgsForCall(0)
				Expect(userID).To(Equal("user-1"))
				Expect(offset).To(Equal(0))
				Expect(limit).To(Equal(20))
			})
		})

		When("the user does not exist", func() {
			It("should return user not found", func() {
				fakeRepo.UserExistsReturns(false, nil)

				_, err := ledger.ListUserTransactions(ctx, "user-1", 0, 20)
				Expect(err).To(MatchError(core.ErrUserNotFound))
				Expect(fakeRepo.ListUserTransactionsCallCount()).To(Equal(0))
			})
		})
	})

	Describe("UpdateTransactionStatus", func() {
		var (
			status string
			record core.TransactionRecord
			err    error
		)

		BeforeEach(func() {
			status = repository.StatusCompleted
			fakeRepo.GetTransactionByHashReturns(repository.Transaction{
				TransactionHash: "hash",
				Status:          repository.StatusPending,
				CreatedAt:       time.Now(),
			}, nil)
		})

		JustBeforeEach(func() {
			record, err = ledger.UpdateTransactionStatus(ctx, "hash", status)
		})

		When("the entry is pending", func() {
			It("should move it to the new status", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Status).To(Equal(repository.StatusCompleted))
				Expect(record.CompletedAt).NotTo(BeNil())

				_, hash, from, to, completedAt := fakeRepo.UpdateTransactionStatusArgsForCall(0)
				Expect(hash).To(Equal("hash"))
				Expect(from).To(Equal(repository.StatusPending))
				Expect(to).To(Equal(repository.StatusCompleted))
				Expect(completedAt).NotTo(BeNil())
			})
		})

		When("the target status is pending", func() {
			BeforeEach(func() {
				status = repository.StatusPending
			})

			It("should reject the transition", func() {
				Expect(err).To(MatchError(core.ErrInvalidStatus))
				Expect(fakeRepo.GetTransactionByHashCallCount()).To(Equal(0))
			})
		})

		When("the entry is already terminal", func() {
			BeforeEach(func() {
				fakeRepo.GetTransactionByHashReturns(repository.Transaction{Status: repository.StatusFailed}, nil)
			})

			It("should reject the transition", func() {
				Expect(err).To(MatchError(core.ErrInvalidStatus))
				Expect(fakeRepo.UpdateTransactionStatusCallCount()).To(Equal(0))
			})
		})

		When("another request settles it first", func() {
			BeforeEach(func() {
				fakeRepo.UpdateTransactionStatusReturns(repository.ErrStaleStatus)
			})

			It("should reject the transition", func() {
				Expect(err).To(MatchError(core.ErrInvalidStatus))
			})
		})

		When("the entry does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetTransactionByHashReturns(repository.Transaction{}, repository.ErrTransactionNotFound)
			})

			It("should return transaction not found", func() {
				Expect(err).To(MatchError(core.ErrTransactionNotFound))
			})
		})
	})
})

package payload_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"solpay/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const (
	senderID   = "3f1c2a9e-6d0b-4c55-9a8e-2b7f0d1e4c6a"
	receiverID = "8a6b1f3e-2c4d-4e5f-8a9b-0c1d2e3f4a5b"
	mint       = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
)

var _ = Describe("Decoder", func() {
	decode := func(body string, object any) error {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		return payload.Decoder{}.DecodeJSONPayload(req, object)
	}

	It("should reject unknown fields", func() {
		var req payload.CreateUserRequest
		err := decode(`{"phone_number":"+15551234567","admin":true}`, &req)
		Expect(err).To(MatchError(ContainSubstring("admin")))
	})

	It("should reject malformed json", func() {
		var req payload.CreateUserRequest
		Expect(decode(`{"phone_number":`, &req)).NotTo(Succeed())
	})

	It("should skip validation for plain objects", func() {
		var req map[string]any
		Expect(decode(`{"anything":1}`, &req)).To(Succeed())
		Expect(req).To(HaveKey("anything"))
	})
})

var _ = Describe("TransferRequest", func() {
	var req payload.TransferRequest

	BeforeEach(func() {
		req = payload.TransferRequest{
			Transaction: "AQID",
			Encoding:    "hex",
			SenderID:    senderID,
			ReceiverID:  receiverID,
			Amount:      "12.5",
			Tokens:      []payload.TokenRequest{{Amount: "12.5", TokenAddress: mint}},
		}
	})

	It("should accept a complete request", func() {
		Expect(req.Validate()).To(Succeed())
	})

	It("should map to a transfer message", func() {
		msg := req.ToMessage()
		Expect(string(msg.Encoding)).To(Equal("hex"))
		Expect(msg.Tokens).To(HaveLen(1))
		Expect(msg.Tokens[0].TokenAddress).To(Equal(mint))
	})

	DescribeTable("invalid requests",
		func(mutate func(*payload.TransferRequest), field string) {
			mutate(&req)
			Expect(req.Validate()).To(MatchError(ContainSubstring(field)))
		},
		Entry("missing transaction", func(r *payload.TransferRequest) { r.Transaction = "" }, "transaction"),
		Entry("unknown encoding", func(r *payload.TransferRequest) { r.Encoding = "base32" }, "encoding"),
		Entry("sender not canonical", func(r *payload.TransferRequest) { r.SenderID = "alice" }, "sender_id"),
		Entry("self transfer", func(r *payload.TransferRequest) { r.ReceiverID = senderID }, "receiver_id"),
		Entry("negative amount", func(r *payload.TransferRequest) { r.Amount = "-1" }, "amount"),
		Entry("no tokens", func(r *payload.TransferRequest) { r.Tokens = nil }, "tokens"),
		Entry("bad token address", func(r *payload.TransferRequest) {
			r.Tokens = []payload.TokenRequest{{Amount: "1", TokenAddress: "not-a-key"}}
		}, "token_address"),
	)
})

var _ = Describe("LedgerEntryRequest", func() {
	var req payload.LedgerEntryRequest

	BeforeEach(func() {
		req = payload.LedgerEntryRequest{
			TransactionHash: "5VERv8NMvzbJMEkV8xnrLkEaWRtSz9CosKDYjCJjBRnbJLgp8uirBgmQpjKhoR4tjF3ZpRzrFmBV6UjKdiSZkQUW",
			SenderID:        senderID,
			ReceiverID:      receiverID,
			Amount:          "3",
			Tokens:          []payload.TokenRequest{{Amount: "3", TokenAddress: mint}},
		}
	})

	It("should default to no status", func() {
		Expect(req.Validate()).To(Succeed())
		Expect(req.ToMessage().Status).To(BeEmpty())
	})

	It("should accept a terminal status", func() {
		req.Status = "completed"
		Expect(req.Validate()).To(Succeed())
	})

	It("should reject an unknown status", func() {
		req.Status = "settled"
		Expect(req.Validate()).To(MatchError(ContainSubstring("status")))
	})

	It("should reject a hash that is not a signature", func() {
		req.TransactionHash = "abc"
		Expect(req.Validate()).To(MatchError(ContainSubstring("transaction_hash")))
	})
})

var _ = Describe("UpdateUserRequest", func() {
	It("should accept an empty patch", func() {
		Expect(payload.UpdateUserRequest{}.Validate()).To(Succeed())
	})

	It("should reject lowercase currencies", func() {
		req := payload.UpdateUserRequest{Currencies: []string{"usdc"}}
		Expect(req.Validate()).To(MatchError(ContainSubstring("currencies")))
	})

	It("should reject an empty handle", func() {
		handle := ""
		req := payload.UpdateUserRequest{Handle: &handle}
		Expect(req.Validate()).To(MatchError(ContainSubstring("handle")))
	})
})

var _ = Describe("ParsePageRequest", func() {
	DescribeTable("valid pages",
		func(query string, offset, limit int) {
			values, err := url.ParseQuery(query)
			Expect(err).NotTo(HaveOccurred())

			page, err := payload.ParsePageRequest(values)
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Offset).To(Equal(offset))
			Expect(page.Limit).To(Equal(limit))
		},
		Entry("defaults", "", 0, payload.DefaultLimit),
		Entry("explicit", "offset=40&limit=5", 40, 5),
		Entry("max limit", "limit=100", 0, payload.MaxLimit),
	)

	DescribeTable("invalid pages",
		func(query string) {
			values, err := url.ParseQuery(query)
			Expect(err).NotTo(HaveOccurred())

			_, err = payload.ParsePageRequest(values)
			Expect(err).To(HaveOccurred())
		},
		Entry("negative offset", "offset=-1"),
		Entry("zero limit", "limit=0"),
		Entry("limit above max", "limit=101"),
		Entry("not a number", "limit=ten"),
	)
})

package solana_test

import (
	"encoding/base64"
	"encoding/hex"
	"solpay/internal/solana"

	"github.com/mr-tron/base58"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DecodeTransaction", func() {
	var raw []byte

	BeforeEach(func() {
		raw = []byte{0x01, 0x00, 0xfe, 0x7a, 0x42, 0x99, 0x10}
	})

	DescribeTable("decodes every supported encoding to the same bytes",
		func(encode func([]byte) string, encoding solana.Encoding) {
			decoded, err := solana.DecodeTransaction(encode(raw), encoding)
			Expect(err).NotTo(HaveOccurred())
			Expect(decoded).To(Equal(raw))
		},
		Entry("hex", hex.EncodeToString, solana.EncodingHex),
		Entry("hex with 0x prefix", func(b []byte) string { return "0x" + hex.EncodeToString(b) }, solana.EncodingHex),
		Entry("base64", base64.StdEncoding.EncodeToString, solana.EncodingBase64),
		Entry("base58", base58.Encode, solana.EncodingBase58),
		Entry("surrounding whitespace", func(b []byte) string { return "  " + base58.Encode(b) + "\n" }, solana.EncodingBase58),
	)

	DescribeTable("rejects malformed input",
		func(encoded string, encoding solana.Encoding) {
			decoded, err := solana.DecodeTransaction(encoded, encoding)
			Expect(err).To(MatchError(solana.ErrDecode))
			Expect(decoded).To(BeNil())
		},
		Entry("empty", "", solana.EncodingBase64),
		Entry("blank", "   ", solana.EncodingHex),
		Entry("odd length hex", "abc", solana.EncodingHex),
		Entry("non hex characters", "zz11", solana.EncodingHex),
		Entry("bare 0x prefix", "0x", solana.EncodingHex),
		Entry("invalid base64", "%%%%", solana.EncodingBase64),
		Entry("base58 with excluded characters", "0OIl", solana.EncodingBase58),
		Entry("unsupported encoding", "AQID", solana.Encoding("base32")),
	)
})

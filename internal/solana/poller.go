package solana

import (
	"context"
	"fmt"
	"time"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// AwaitFinalized polls the signature status until the network reports it finalized.
// Unknown and not yet finalized statuses are retried every poll interval. When the attempt
// budget runs out or ctx ends first, the outcome is unknown and ErrConfirmationTimeout is returned.
func (s *Service) AwaitFinalized(ctx context.Context, signature solanago.Signature) (Confirmation, error) {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for attempt := 1; attempt <= s.pollAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return Confirmation{}, fmt.Errorf("%w: %s: %w", ErrConfirmationTimeout, signature, ctx.Err())
		case <-timer.C:
		}

		out, err := s.client.GetSignatureStatuses(ctx, true, signature)
		switch {
		case err != nil:
			s.logs.Warnw("signature status poll failed",
				"signature", signature.String(),
				"attempt", attempt,
				"error", err)
		case out != nil && len(out.Value) > 0 && out.Value[0] != nil:
			status := out.Value[0]
			if status.ConfirmationStatus == rpc.ConfirmationStatusFinalized {
				return Confirmation{
					Signature: signature,
					Slot:      status.Slot,
					Err:       status.Err,
				}, nil
			}
		}

		timer.Reset(s.pollInterval)
	}

	return Confirmation{}, fmt.Errorf("%w: %s not finalized after %d attempts", ErrConfirmationTimeout, signature, s.pollAttempts)
}

package fingerprint_test

import (
	"context"
	"crypto/rand"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/luxfi/fingerprint/pkg/bn254"
	"github.com/luxfi/fingerprint/pkg/components"
	"github.com/luxfi/fingerprint/pkg/fingerprint"
	"github.com/luxfi/fingerprint/pkg/party"
	"github.com/luxfi/fingerprint/pkg/protocol"
	"github.com/luxfi/fingerprint/pkg/secretsharing"
)

func goldenTransaction() fingerprint.RawTransaction {
	return fingerprint.RawTransaction{
		BIC:      "BCEELU21",
		Base:     1000,
		Atto:     0,
		Currency: "EUR",
		DateTime: time.Date(2025, 9, 16, 12, 34, 56, 0, time.UTC),
		WWD:      time.Date(2025, 9, 16, 0, 0, 0, 0, time.UTC),
	}
}

var _ = Describe("Transaction fingerprinting", func() {
	var naive protocol.NaiveProtocol

	BeforeEach(func() {
		naive = protocol.NewNaiveProtocol(bn254.NewFromUint64(42))
	})

	Describe("Determinism", func() {
		It("returns the same fingerprint for the same transaction and protocol", func() {
			tx := goldenTransaction()
			a, err := fingerprint.Compute(context.Background(), tx, naive)
			Expect(err).NotTo(HaveOccurred())
			b, err := fingerprint.Compute(context.Background(), tx, naive)
			Expect(err).NotTo(HaveOccurred())
			Expect(a.Equal(b)).To(BeTrue())
		})
	})

	Describe("Padding fidelity", func() {
		It("changes when the BIC changes", func() {
			tx := goldenTransaction()
			base, err := fingerprint.Compute(context.Background(), tx, naive)
			Expect(err).NotTo(HaveOccurred())

			tx.BIC = "BCEELU22"
			changed, err := fingerprint.Compute(context.Background(), tx, naive)
			Expect(err).NotTo(HaveOccurred())
			Expect(base.Equal(changed)).To(BeFalse())
		})

		It("changes when the amount changes", func() {
			tx := goldenTransaction()
			base, err := fingerprint.Compute(context.Background(), tx, naive)
			Expect(err).NotTo(HaveOccurred())

			tx.Atto = 1
			changed, err := fingerprint.Compute(context.Background(), tx, naive)
			Expect(err).NotTo(HaveOccurred())
			Expect(base.Equal(changed)).To(BeFalse())
		})

		It("changes when the currency changes", func() {
			tx := goldenTransaction()
			base, err := fingerprint.Compute(context.Background(), tx, naive)
			Expect(err).NotTo(HaveOccurred())

			tx.Currency = "USD"
			changed, err := fingerprint.Compute(context.Background(), tx, naive)
			Expect(err).NotTo(HaveOccurred())
			Expect(base.Equal(changed)).To(BeFalse())
		})

		It("changes when the date-time changes", func() {
			tx := goldenTransaction()
			base, err := fingerprint.Compute(context.Background(), tx, naive)
			Expect(err).NotTo(HaveOccurred())

			tx.DateTime = tx.DateTime.Add(time.Second)
			changed, err := fingerprint.Compute(context.Background(), tx, naive)
			Expect(err).NotTo(HaveOccurred())
			Expect(base.Equal(changed)).To(BeFalse())
		})
	})

	Describe("Boundary scenarios", func() {
		It("succeeds exactly at EPOCH", func() {
			tx := fingerprint.RawTransaction{
				BIC:      "BCEELU21",
				Base:     0,
				Atto:     0,
				Currency: "EUR",
				DateTime: components.Epoch,
				WWD:      components.Epoch.AddDate(0, 0, 1),
			}
			_, err := fingerprint.Compute(context.Background(), tx, naive)
			Expect(err).NotTo(HaveOccurred())
		})

		It("fails with InvalidDate when date_time predates EPOCH", func() {
			tx := goldenTransaction()
			tx.DateTime = components.Epoch.Add(-time.Second)
			_, err := fingerprint.Compute(context.Background(), tx, naive)
			Expect(err).To(MatchError(components.ErrInvalidDate))
		})

		It("rejects a zero day offset without panicking", func() {
			tx := fingerprint.RawTransaction{
				BIC:      "BCEELU21",
				Base:     0,
				Atto:     0,
				Currency: "EUR",
				DateTime: components.Epoch,
				WWD:      components.Epoch,
			}
			Expect(func() {
				_, _ = fingerprint.Compute(context.Background(), tx, naive)
			}).NotTo(Panic())

			_, err := fingerprint.Compute(context.Background(), tx, naive)
			Expect(err).To(HaveOccurred())
		})

		It("rejects a special ISO currency", func() {
			tx := goldenTransaction()
			tx.Currency = "XAU"
			_, err := fingerprint.Compute(context.Background(), tx, naive)
			Expect(err).To(HaveOccurred())
		})

		It("produces a stable constant for the golden scenario", func() {
			// The exact expected field value cannot be pinned to a
			// published reference vector in this environment (no Go
			// toolchain run is available to generate one); this instead
			// locks in the golden scenario's own self-consistency so a
			// future regression against a real reference vector has a
			// fixed point to diff against.
			tx := goldenTransaction()
			a, err := fingerprint.Compute(context.Background(), tx, naive)
			Expect(err).NotTo(HaveOccurred())
			b, err := fingerprint.Compute(context.Background(), tx, naive)
			Expect(err).NotTo(HaveOccurred())
			Expect(a.Equal(b)).To(BeTrue())
			Expect(a.IsZero()).To(BeFalse())
		})
	})

	Describe("Threshold agreement", func() {
		It("matches the naive protocol for a collaborative 2-of-3 quorum", func() {
			secret := bn254.NewFromUint64(42)
			ids := party.NewIDSlice([]party.ID{"agent-1", "agent-2", "agent-3"})
			shares, err := secretsharing.Split(rand.Reader, secret, ids, 2)
			Expect(err).NotTo(HaveOccurred())

			endpoints := map[party.ID]string{"agent-1": ":1", "agent-2": ":2", "agent-3": ":3"}
			topology, err := protocol.NewAgentTopology(endpoints, 2)
			Expect(err).NotTo(HaveOccurred())

			tx := goldenTransaction()
			want, err := fingerprint.Compute(context.Background(), tx, naive)
			Expect(err).NotTo(HaveOccurred())

			for _, coordinator := range ids {
				client := &fakeAgentClient{shares: shares}
				collab := protocol.NewCollaborativeProtocol(coordinator, shares[coordinator], topology, client)
				got, err := fingerprint.Compute(context.Background(), tx, collab)
				Expect(err).NotTo(HaveOccurred())
				Expect(want.Equal(got)).To(BeTrue())
			}
		})
	})
})

// fakeAgentClient stands in for a real agent RPC transport in tests.
type fakeAgentClient struct {
	shares map[party.ID]bn254.Element
}

func (c *fakeAgentClient) Cooperate(ctx context.Context, id party.ID, point bn254.Point, coefficient bn254.Element) (bn254.Point, error) {
	return point.ScalarMul(coefficient.Mul(c.shares[id])), nil
}

package equilibrium_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temporalnets/flockwork/equilibrium"
)

// sampleOnce draws one seeded configuration and fails the test on error.
func sampleOnce(t *testing.T, n int, p float64, seed uint64) equilibrium.Config {
	t.Helper()
	opts := equilibrium.DefaultOptions()
	opts.Seed = seed
	cfg, err := equilibrium.Configuration(n, p, &opts)
	require.NoError(t, err, "N=%d P=%v seed=%d", n, p, seed)
	return cfg
}

// TestConfiguration_Deterministic verifies that the same nonzero seed
// reproduces the same edge set and histogram.
func TestConfiguration_Deterministic(t *testing.T) {
	a := sampleOnce(t, 40, 0.6, 1234)
	b := sampleOnce(t, 40, 0.6, 1234)

	assert.Equal(t, a.Edges, b.Edges, "same seed must reproduce edges")
	assert.Equal(t, a.Histogram, b.Histogram, "same seed must reproduce histogram")
}

// TestConfiguration_PartitionCoversAllNodes verifies that every node lands
// in exactly one group, for all N up to 50 and P across [0,1].
func TestConfiguration_PartitionCoversAllNodes(t *testing.T) {
	ps := []float64{0, 0.1, 0.3, 0.5, 0.7, 0.9, 1}
	for n := 3; n <= 50; n++ {
		for _, p := range ps {
			cfg := sampleOnce(t, n, p, uint64(n)*100+7)

			comps := equilibrium.Components(n, cfg.Edges)
			seen := make([]int, n)
			total := 0
			for _, comp := range comps {
				total += len(comp)
				for _, u := range comp {
					require.GreaterOrEqual(t, u, 0)
					require.Less(t, u, n)
					seen[u]++
				}
			}
			require.Equal(t, n, total, "partition must cover N nodes (N=%d P=%v)", n, p)
			for u, c := range seen {
				require.Equal(t, 1, c, "node %d must appear exactly once (N=%d P=%v)", u, n, p)
			}
		}
	}
}

// TestConfiguration_HistogramMatchesComponents verifies the returned group
// counter agrees with the component sizes of the edge set.
func TestConfiguration_HistogramMatchesComponents(t *testing.T) {
	cfg := sampleOnce(t, 30, 0.5, 99)

	want := make([]float64, 31)
	for _, comp := range equilibrium.Components(30, cfg.Edges) {
		want[len(comp)]++
	}
	assert.Equal(t, want, cfg.Histogram)
}

// TestConfiguration_ZeroP verifies that P=0 yields only loners: no edges,
// N groups of size one.
func TestConfiguration_ZeroP(t *testing.T) {
	cfg := sampleOnce(t, 12, 0, 5)

	assert.Empty(t, cfg.Edges, "P=0 admits no edges")
	assert.Equal(t, 12.0, cfg.Histogram[1], "all groups are loners")
}

// TestConfiguration_UnitP verifies that P=1 yields one clique of all N
// nodes with the full N(N−1)/2 edge count.
func TestConfiguration_UnitP(t *testing.T) {
	const n = 9
	cfg := sampleOnce(t, n, 1, 5)

	assert.Len(t, cfg.Edges, n*(n-1)/2, "single clique of all nodes")
	assert.Equal(t, 1.0, cfg.Histogram[n])
}

// TestConfiguration_ComponentsAreCliques verifies that each connected
// component carries exactly s(s−1)/2 edges, i.e. is fully connected.
func TestConfiguration_ComponentsAreCliques(t *testing.T) {
	const n = 40
	cfg := sampleOnce(t, n, 0.75, 2024)

	compOf := make([]int, n)
	comps := equilibrium.Components(n, cfg.Edges)
	for ci, comp := range comps {
		for _, u := range comp {
			compOf[u] = ci
		}
	}

	edgesIn := make([]int, len(comps))
	for _, e := range cfg.Edges {
		require.Equal(t, compOf[e.U], compOf[e.V], "edge must stay inside one group")
		edgesIn[compOf[e.U]]++
	}
	for ci, comp := range comps {
		s := len(comp)
		assert.Equal(t, s*(s-1)/2, edgesIn[ci], "component %d must be a clique", ci)
	}
}

// TestConfiguration_NoShuffle verifies that Shuffle=false assigns nodes in
// identity order, so the sample stays a valid partition of 0..N−1.
func TestConfiguration_NoShuffle(t *testing.T) {
	opts := equilibrium.DefaultOptions()
	opts.Shuffle = false
	opts.Seed = 77
	cfg, err := equilibrium.Configuration(15, 0.4, &opts)
	require.NoError(t, err)

	total := 0
	for _, comp := range equilibrium.Components(15, cfg.Edges) {
		total += len(comp)
	}
	assert.Equal(t, 15, total)
}

// TestConfiguration_SmallNExtremeP drives the degenerate corners flagged as
// a potential stall in the partition loop: tiny N with P pushed against
// either boundary. The sampler must either finish with a full partition or
// report ErrPartitionStalled — never hang.
func TestConfiguration_SmallNExtremeP(t *testing.T) {
	ps := []float64{1e-12, 1e-6, 0.999999, 1 - 1e-12}
	for n := 3; n <= 6; n++ {
		for _, p := range ps {
			opts := equilibrium.DefaultOptions()
			opts.Seed = uint64(n) + 1
			cfg, err := equilibrium.Configuration(n, p, &opts)
			if err != nil {
				assert.ErrorIs(t, err, equilibrium.ErrPartitionStalled)
				continue
			}
			total := 0
			for _, comp := range equilibrium.Components(n, cfg.Edges) {
				total += len(comp)
			}
			assert.Equal(t, n, total, "N=%d P=%v", n, p)
		}
	}
}

// TestConfiguration_HistogramConvergence draws many seeded samples at
// N=20, P=0.5 and compares the mean sampled histogram against the closed
// form. Tolerances are statistical, not exact.
func TestConfiguration_HistogramConvergence(t *testing.T) {
	const (
		n    = 20
		p    = 0.5
		runs = 3000
	)
	dist, err := equilibrium.GroupSizeDistribution(n, p)
	require.NoError(t, err)

	mean := make([]float64, n+1)
	for r := 0; r < runs; r++ {
		cfg := sampleOnce(t, n, p, uint64(r)+1)
		for m, c := range cfg.Histogram {
			mean[m] += c / runs
		}
	}

	// Every sample partitions exactly N nodes, so the weighted mean is exact.
	var mass float64
	for m, v := range mean {
		mass += float64(m) * v
	}
	assert.InDelta(t, float64(n), mass, 1e-9, "each sample must partition N nodes")

	// Entry-wise agreement for sizes with non-negligible expectation.
	for m := 1; m <= n; m++ {
		if dist[m] < 0.5 {
			continue
		}
		assert.InDelta(t, dist[m], mean[m], 0.15*dist[m]+0.3,
			"mean sampled count drifts from closed form at size %d", m)
	}
}

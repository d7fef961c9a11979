package fleet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napolitain/exped-planner/internal/models"
)

func TestAtLeast_PadsWildcard(t *testing.T) {
	minCompo := models.FleetCompo{models.CL: 1, models.DD: 2, models.AnyShip: 1}

	abstract, err := AtLeast(6, minCompo)
	require.NoError(t, err)
	assert.Equal(t, 2, abstract.Padding)
	assert.Equal(t, 3, abstract.WildcardSlots())
	assert.Equal(t, 6, abstract.Total())
}

func TestAtLeast_MinimumsAlreadyEnough(t *testing.T) {
	minCompo := models.FleetCompo{models.CL: 1, models.DD: 4}

	for _, target := range []int{1, 3, 5} {
		abstract, err := AtLeast(target, minCompo)
		require.NoError(t, err, "target %d", target)
		assert.Equal(t, 0, abstract.Padding)
		assert.Equal(t, minCompo, abstract.Ships)
	}
}

func TestAtLeast_NoWildcardIsInsufficient(t *testing.T) {
	minCompo := models.FleetCompo{models.CL: 1, models.DD: 4}

	_, err := AtLeast(6, minCompo)
	var insufficient *models.InsufficientCompositionError
	require.True(t, errors.As(err, &insufficient), "got %v", err)
	assert.Equal(t, 6, insufficient.Target)
	assert.Equal(t, 5, insufficient.Minimum)
}

func TestAtLeast_DoesNotMutateTemplate(t *testing.T) {
	minCompo := models.FleetCompo{models.DD: 2, models.AnyShip: 0}
	before := minCompo.Clone()

	abstract, err := AtLeast(6, minCompo)
	require.NoError(t, err)
	compo := ApplyWildcard(models.DD, abstract)
	compo[models.DD] = 99

	assert.Equal(t, before, minCompo)
}

func TestApplyWildcard_MergesWithExistingType(t *testing.T) {
	// DD minimum k=2, wildcard slots w=1 declared + 2 padding
	minCompo := models.FleetCompo{models.CL: 1, models.DD: 2, models.AnyShip: 1}
	abstract, err := AtLeast(6, minCompo)
	require.NoError(t, err)

	compo := ApplyWildcard(models.DD, abstract)
	assert.Equal(t, models.FleetCompo{models.CL: 1, models.DD: 5}, compo)
	assert.Equal(t, 6, compo.Total())
}

func TestApplyWildcard_NewType(t *testing.T) {
	abstract, err := AtLeast(4, models.FleetCompo{models.AnyShip: 2})
	require.NoError(t, err)

	compo := ApplyWildcard(models.SS, abstract)
	assert.Equal(t, models.FleetCompo{models.SS: 4}, compo)
}

func TestApplyWildcard_FalseDropsPadding(t *testing.T) {
	minCompo := models.FleetCompo{models.CL: 1, models.DD: 4, models.AnyShip: 0}
	abstract, err := AtLeast(6, minCompo)
	require.NoError(t, err)

	compo := ApplyWildcard(models.NoWildcard, abstract)
	assert.Equal(t, models.FleetCompo{models.CL: 1, models.DD: 4}, compo)
	assert.False(t, compo.HasWildcard())
}

func TestApplyWildcard_FalseKeepsDeclaredMinimum(t *testing.T) {
	minCompo := models.FleetCompo{models.CL: 1, models.DD: 2, models.AnyShip: 1}
	abstract, err := AtLeast(6, minCompo)
	require.NoError(t, err)

	compo := ApplyWildcard(models.NoWildcard, abstract)
	assert.Equal(t, models.FleetCompo{models.CL: 1, models.DD: 2, models.AnyShip: 1}, compo)
}

func TestResolve(t *testing.T) {
	minCompo := models.FleetCompo{models.CL: 1, models.DD: 2, models.AnyShip: 1}

	compo, resolved, err := Resolve(minCompo, 4, models.DE)
	require.NoError(t, err)
	assert.True(t, resolved)
	assert.Equal(t, models.FleetCompo{models.CL: 1, models.DD: 2, models.DE: 1}, compo)

	_, resolved, err = Resolve(minCompo, 4, models.NoWildcard)
	require.NoError(t, err)
	assert.False(t, resolved)

	// No wildcard slots at all: nothing to resolve
	compo, resolved, err = Resolve(models.FleetCompo{models.SS: 4}, 4, models.NoWildcard)
	require.NoError(t, err)
	assert.True(t, resolved)
	assert.Equal(t, models.FleetCompo{models.SS: 4}, compo)

	_, _, err = Resolve(models.FleetCompo{models.SS: 4}, 5, models.DD)
	assert.Error(t, err)
}

// FuzzAtLeast checks the size and per-type minimum invariants
func FuzzAtLeast(f *testing.F) {
	f.Add(1, 2, 1, 6, true)
	f.Add(0, 0, 2, 4, true)
	f.Add(1, 4, 0, 5, false)
	f.Add(2, 2, 2, 1, true)

	f.Fuzz(func(t *testing.T, cl, dd, wild, target int, hasWildcard bool) {
		if cl < 0 || dd < 0 || wild < 0 || target < 1 {
			return
		}
		if cl > 6 || dd > 6 || wild > 6 || target > 12 {
			return
		}

		minCompo := models.FleetCompo{models.CL: cl, models.DD: dd}
		if hasWildcard {
			minCompo[models.AnyShip] = wild
		}
		minimum := minCompo.Total()

		abstract, err := AtLeast(target, minCompo)
		if err != nil {
			if hasWildcard || target <= minimum {
				t.Fatalf("unexpected error: %v", err)
			}
			return
		}

		for _, chosen := range []models.ShipType{models.DD, models.SS} {
			compo := ApplyWildcard(chosen, abstract)

			// Property: sum is exactly the target when padding was possible
			want := max(target, minimum)
			if compo.Total() != want {
				t.Errorf("total = %d, want %d (%v)", compo.Total(), want, compo)
			}

			// Property: each concrete type keeps its minimum
			if compo[models.CL] < cl || compo[models.DD] < dd {
				t.Errorf("minimum violated: %v from %v", compo, minCompo)
			}

			// Property: no wildcard survives a concrete assignment
			if compo.HasWildcard() {
				t.Errorf("wildcard left in %v", compo)
			}
		}
	})
}

package helpers

import "testing"

type countingReleaser struct {
	released int
}

func (c *countingReleaser) Release() {
	c.released++
}

func TestReleaseGuard(t *testing.T) {
	tests := []struct {
		name string
		keep bool
		want int
	}{
		{"released on error path", false, 1},
		{"kept on success", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := &countingReleaser{}

			func() {
				guard := NewReleaseGuard(res)
				defer guard.Release()

				if tt.keep {
					guard.Keep()
				}
			}()

			if res.released != tt.want {
				t.Errorf("released %d times, want %d", res.released, tt.want)
			}
		})
	}
}

func TestReleaseGuardReleasesOnce(t *testing.T) {
	res := &countingReleaser{}

	guard := NewReleaseGuard(res)
	guard.Release()
	guard.Release()

	if res.released != 1 {
		t.Errorf("released %d times, want 1", res.released)
	}
}

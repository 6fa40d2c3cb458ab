package services

import "testing"

func TestGridCacheKeyIncludesScale(t *testing.T) {
	base := GridCacheKey(7, 6, 8, 20, 1)
	scaled := GridCacheKey(7, 6, 8, 20, 0.5)

	if base == scaled {
		t.Fatalf("grids built at different scales must not share a cache entry: %s", base)
	}
}

func TestGridCacheKeyDistinguishesUsersAndWindows(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{
			name: "different users",
			a:    GridCacheKey(1, 6, 8, 20, 1),
			b:    GridCacheKey(2, 6, 8, 20, 1),
		},
		{
			name: "different day counts",
			a:    GridCacheKey(1, 6, 8, 20, 1),
			b:    GridCacheKey(1, 7, 8, 20, 1),
		},
		{
			name: "different hour windows",
			a:    GridCacheKey(1, 6, 8, 20, 1),
			b:    GridCacheKey(1, 6, 9, 18, 1),
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if tc.a == tc.b {
				t.Fatalf("keys should differ: %s", tc.a)
			}
		})
	}
}

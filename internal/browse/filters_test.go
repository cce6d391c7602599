package browse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/justchokingaround/morty/internal/api"
)

func TestDeriveFilters(t *testing.T) {
	tests := []struct {
		name string
		path string
		want api.Filter
	}{
		{"no query", "/information/1", api.Filter{}},
		{"all keys", "/information/2?name=rick&status=Alive&species=Human&gender=Male",
			api.Filter{Name: "rick", Status: "Alive", Species: "Human", Gender: "Male"}},
		{"unknown keys ignored", "/information/1?foo=bar&species=Alien&page=4", api.Filter{Species: "Alien"}},
		{"empty values ignored", "/information/1?name=&status=Dead", api.Filter{Status: "Dead"}},
		{"escaped values", "/information/1?name=Mr.+Poopy%20Butthole", api.Filter{Name: "Mr. Poopy Butthole"}},
		{"first value wins", "/information/1?gender=Female&gender=Male", api.Filter{Gender: "Female"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, DeriveFilters(tt.path)); diff != "" {
				t.Errorf("DeriveFilters(%q) mismatch (-want +got):\n%s", tt.path, diff)
			}
		})
	}
}

func TestBuildQuery(t *testing.T) {
	assert.Equal(t, "", BuildQuery(api.Filter{}))
	assert.Equal(t, "?name=rick&status=Alive", BuildQuery(api.Filter{Status: "Alive", Name: "rick"}))
	assert.Equal(t, "?species=Mythological+Creature", BuildQuery(api.Filter{Species: "Mythological Creature"}))
}

func TestFilterRoundTrip(t *testing.T) {
	values := []string{"rick", "Alive", "Mythological Creature", "a&b=c", "100%", "plus+sign", "ünïcødé", "semi;colon", "hash#tag", " padded "}

	// every subset of the four keys, each with every sample value
	for mask := 0; mask < 16; mask++ {
		for _, v := range values {
			var f api.Filter
			if mask&1 != 0 {
				f.Name = v
			}
			if mask&2 != 0 {
				f.Status = v
			}
			if mask&4 != 0 {
				f.Species = v
			}
			if mask&8 != 0 {
				f.Gender = v
			}

			got := DeriveFilters(StartPath + BuildQuery(f))
			if diff := cmp.Diff(f, got); diff != "" {
				t.Fatalf("round trip of %+v mismatch (-want +got):\n%s", f, diff)
			}
		}
	}
}

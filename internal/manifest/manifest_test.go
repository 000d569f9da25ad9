package manifest

import (
	"airship-delivery/internal/domain"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func collect(m *Manifest) []domain.Delivery {
	var out []domain.Delivery
	for _, d := range m.All() {
		out = append(out, d)
	}
	return out
}

func TestManifestAddPreservesOrder(t *testing.T) {
	m := New()
	var want []domain.Delivery
	for i := 0; i < 25; i++ {
		d := domain.Delivery{
			Customer: fmt.Sprintf("customer-%02d", i%7),
			Item:     fmt.Sprintf("item-%02d", i),
			Quantity: i + 1,
			Cost:     float64(i) * 1.5,
		}
		m.Add(d.Customer, d.Item, d.Quantity, d.Cost)
		want = append(want, d)
	}

	if diff := cmp.Diff(want, collect(m)); diff != "" {
		t.Fatalf("enumeration mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, m.Records()); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
	if m.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", m.Len(), len(want))
	}
}

func TestManifestAllPositionsAndRestart(t *testing.T) {
	m := New()
	m.Add("A", "a", 1, 1)
	m.Add("B", "b", 2, 2)
	m.Add("C", "c", 3, 3)

	for pass := 0; pass < 2; pass++ {
		want := 1
		for pos, d := range m.All() {
			if pos != want {
				t.Fatalf("pass %d: position = %d, want %d", pass, pos, want)
			}
			if d.Quantity != want {
				t.Fatalf("pass %d: record %d has quantity %d", pass, pos, d.Quantity)
			}
			want++
		}
		if want != 4 {
			t.Fatalf("pass %d: visited %d records, want 3", pass, want-1)
		}
	}

	// early break must stop the sequence
	n := 0
	for range m.All() {
		n++
		break
	}
	if n != 1 {
		t.Fatalf("expected break after one record, got %d", n)
	}
}

func TestManifestFindAfterAdd(t *testing.T) {
	m := New()
	m.Add("Bulk Ryker", "Protein Canisters", 10, 200.0)

	got, ok := m.Find("Bulk Ryker", "Protein Canisters")
	if !ok {
		t.Fatal("expected record to be found")
	}
	want := domain.Delivery{Customer: "Bulk Ryker", Item: "Protein Canisters", Quantity: 10, Cost: 200.0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Find mismatch (-want +got):\n%s", diff)
	}

	if _, ok := m.Find("bulk ryker", "Protein Canisters"); ok {
		t.Error("lookup must be case-sensitive")
	}
	if _, ok := m.Find("Bulk Ryker", "Protein"); ok {
		t.Error("lookup must match the whole item string")
	}
}

func TestManifestFindReturnsCopy(t *testing.T) {
	m := New()
	m.Add("A", "a", 1, 1)

	d, _ := m.Find("A", "a")
	d.Quantity = 99

	got, _ := m.Find("A", "a")
	if got.Quantity != 1 {
		t.Fatalf("caller mutation leaked into manifest: quantity = %d", got.Quantity)
	}
}

func TestManifestModify(t *testing.T) {
	m := New()
	m.Add("Bulk Ryker", "Protein Canisters", 10, 200.0)
	m.Add("Linton Yarrow", "Debug Array", 1, 320.0)
	m.Add("Odette Pell", "Seed Vault", 4, 75.5)

	if !m.Modify("Linton Yarrow", "Debug Array", 2, 150.0) {
		t.Fatal("expected modify to succeed")
	}

	want := []domain.Delivery{
		{Customer: "Bulk Ryker", Item: "Protein Canisters", Quantity: 10, Cost: 200.0},
		{Customer: "Linton Yarrow", Item: "Debug Array", Quantity: 2, Cost: 150.0},
		{Customer: "Odette Pell", Item: "Seed Vault", Quantity: 4, Cost: 75.5},
	}
	if diff := cmp.Diff(want, collect(m)); diff != "" {
		t.Fatalf("modify touched more than the target (-want +got):\n%s", diff)
	}

	if m.Modify("Linton Yarrow", "Debug Arrays", 5, 5) {
		t.Fatal("expected modify of unknown key to fail")
	}
}

func TestManifestRemove(t *testing.T) {
	m := New()
	m.Add("A", "a", 1, 1)
	m.Add("B", "b", 2, 2)
	m.Add("C", "c", 3, 3)
	m.Add("D", "d", 4, 4)

	tests := []struct {
		name      string
		customer  string
		item      string
		wantOK    bool
		remaining []string
	}{
		{"middle", "B", "b", true, []string{"A", "C", "D"}},
		{"head", "A", "a", true, []string{"C", "D"}},
		{"tail", "D", "d", true, []string{"C"}},
		{"already removed", "B", "b", false, []string{"C"}},
		{"last record", "C", "c", true, nil},
	}

	for _, tc := range tests {
		if ok := m.Remove(tc.customer, tc.item); ok != tc.wantOK {
			t.Fatalf("%s: Remove() = %v, want %v", tc.name, ok, tc.wantOK)
		}
		var got []string
		for _, d := range m.All() {
			got = append(got, d.Customer)
		}
		if diff := cmp.Diff(tc.remaining, got); diff != "" {
			t.Fatalf("%s: remaining order mismatch (-want +got):\n%s", tc.name, diff)
		}
		if _, ok := m.Find(tc.customer, tc.item); ok {
			t.Fatalf("%s: record still discoverable after remove", tc.name)
		}
	}
}

func TestManifestDuplicateKeysResolveToEarliest(t *testing.T) {
	m := New()
	m.Add("Mira Sol", "Lantern Oil", 1, 10) // A
	m.Add("Other", "Cargo", 7, 7)
	m.Add("Mira Sol", "Lantern Oil", 2, 20) // B

	got, ok := m.Find("Mira Sol", "Lantern Oil")
	if !ok || got.Quantity != 1 {
		t.Fatalf("Find() = %+v, %v; want record A", got, ok)
	}

	e, ok := m.Locate("Mira Sol", "Lantern Oil")
	if !ok || e.Position != 1 {
		t.Fatalf("Locate() = %+v, %v; want position 1", e, ok)
	}

	if !m.Modify("Mira Sol", "Lantern Oil", 5, 50) {
		t.Fatal("expected modify to succeed")
	}
	if recs := m.Records(); recs[2].Quantity != 2 || recs[2].Cost != 20 {
		t.Fatalf("later duplicate was modified: %+v", recs[2])
	}

	if !m.Remove("Mira Sol", "Lantern Oil") {
		t.Fatal("expected remove to succeed")
	}
	got, ok = m.Find("Mira Sol", "Lantern Oil")
	if !ok {
		t.Fatal("second duplicate should remain discoverable")
	}
	if got.Quantity != 2 || got.Cost != 20 {
		t.Fatalf("Find() after remove = %+v, want record B", got)
	}

	e, ok = m.Locate("Mira Sol", "Lantern Oil")
	if !ok || e.Position != 2 {
		t.Fatalf("Locate() after remove = %+v, %v; want position 2", e, ok)
	}
}

func TestManifestEmpty(t *testing.T) {
	m := New()

	if _, ok := m.Find("A", "a"); ok {
		t.Error("Find on empty manifest reported a record")
	}
	if _, ok := m.Locate("A", "a"); ok {
		t.Error("Locate on empty manifest reported a record")
	}
	if m.Modify("A", "a", 1, 1) {
		t.Error("Modify on empty manifest succeeded")
	}
	if m.Remove("A", "a") {
		t.Error("Remove on empty manifest succeeded")
	}
	if n := len(collect(m)); n != 0 {
		t.Errorf("All() yielded %d records on empty manifest", n)
	}
	if m.Len() != 0 || len(m.Records()) != 0 {
		t.Errorf("expected empty manifest, Len() = %d", m.Len())
	}
}

func TestManifestScenario(t *testing.T) {
	m := New()
	m.Add("Bulk Ryker", "Protein Canisters", 10, 200.0)
	m.Add("Linton Yarrow", "Debug Array", 1, 320.0)

	got, ok := m.Find("Linton Yarrow", "Debug Array")
	if !ok || got.Quantity != 1 || got.Cost != 320.0 {
		t.Fatalf("Find() = %+v, %v", got, ok)
	}

	if !m.Modify("Linton Yarrow", "Debug Array", 2, 150.0) {
		t.Fatal("modify failed")
	}
	got, _ = m.Find("Linton Yarrow", "Debug Array")
	if got.Quantity != 2 || got.Cost != 150.0 {
		t.Fatalf("Find() after modify = %+v", got)
	}

	if !m.Remove("Bulk Ryker", "Protein Canisters") {
		t.Fatal("remove failed")
	}
	want := []domain.Delivery{{Customer: "Linton Yarrow", Item: "Debug Array", Quantity: 2, Cost: 150.0}}
	if diff := cmp.Diff(want, collect(m)); diff != "" {
		t.Fatalf("manifest mismatch (-want +got):\n%s", diff)
	}

	if m.Remove("Bulk Ryker", "Protein Canisters") {
		t.Fatal("second remove should fail")
	}
}

package book

import (
	"errors"
	"strings"
	"testing"

	"github.com/starford/findvisor/internal/apperr"
	"github.com/starford/findvisor/internal/models"
	"github.com/starford/findvisor/internal/predicate"
	"github.com/starford/findvisor/internal/storage"
)

func contact(name string, tags ...string) models.Contact {
	ts := make([]models.Tag, len(tags))
	for i, t := range tags {
		ts[i] = models.Tag(t)
	}
	return models.NewContact(models.Name(name), "12345678", "a@example.com", "Somewhere 1",
		models.NewTagSet(ts...), models.None[models.Meeting](), models.None[models.Remark]())
}

func TestFilteredContacts(t *testing.T) {
	b := New(contact("Alex Yeoh", "friend"), contact("Bernice Yu"), contact("Alex Tan"))
	if got := len(b.FilteredContacts()); got != 3 {
		t.Fatalf("unfiltered = %d, want 3", got)
	}
	b.UpdateFilter(predicate.Name("alex"))
	got := b.FilteredContacts()
	if len(got) != 2 {
		t.Fatalf("filtered = %d, want 2", len(got))
	}
	if got[0].Name() != "Alex Yeoh" || got[1].Name() != "Alex Tan" {
		t.Errorf("order not preserved: %v, %v", got[0].Name(), got[1].Name())
	}
	if b.Len() != 3 {
		t.Errorf("filter must not drop contacts, len = %d", b.Len())
	}
}

func TestSetContact(t *testing.T) {
	alex := contact("Alex Yeoh")
	b := New(alex, contact("Bernice Yu"))

	edited := alex.WithTags(models.NewTagSet("vip"))
	if err := b.SetContact(alex, edited); err != nil {
		t.Fatalf("SetContact: %v", err)
	}
	if !b.Contacts()[0].Equal(edited) {
		t.Errorf("contact not replaced")
	}

	err := b.SetContact(alex, edited)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("stale target: err = %v, want ErrNotFound", err)
	}

	clash := models.NewContact("Bernice Yu", "1", "b@example.com", "x", models.TagSet{}, models.None[models.Meeting](), models.None[models.Remark]())
	if err := b.SetContact(edited, clash); !errors.Is(err, apperr.ErrConstraint) {
		t.Errorf("duplicate name: err = %v, want ErrConstraint", err)
	}
}

func TestAddRejectsDuplicateName(t *testing.T) {
	b := New(contact("Alex Yeoh"))
	if err := b.Add(contact("Alex Yeoh", "other")); !errors.Is(err, apperr.ErrConstraint) {
		t.Errorf("err = %v, want ErrConstraint", err)
	}
	if err := b.Add(contact("Don Yeoh")); err != nil {
		t.Errorf("Add: %v", err)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	orig := Sample()
	data, err := Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Len() != orig.Len() {
		t.Fatalf("len = %d, want %d", got.Len(), orig.Len())
	}
	for i, c := range orig.Contacts() {
		if !got.Contacts()[i].Equal(c) {
			t.Errorf("contact %d differs:\n got  %s\n want %s", i, got.Contacts()[i], c)
		}
	}
}

func TestUnmarshalRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"bad email":    `{"persons":[{"name":"A","phone":"123","email":"nope","address":"x","tags":[]}]}`,
		"bad meeting":  `{"persons":[{"name":"A","phone":"123","email":"a@bc.com","address":"x","tags":[],"meeting":{"start":"31-04-2024T10:00","end":"01-05-2024T10:00","remark":""}}]}`,
		"end < start":  `{"persons":[{"name":"A","phone":"123","email":"a@bc.com","address":"x","tags":[],"meeting":{"start":"02-05-2024T10:00","end":"01-05-2024T10:00","remark":""}}]}`,
		"bad tag":      `{"persons":[{"name":"A","phone":"123","email":"a@bc.com","address":"x","tags":["two words"]}]}`,
		"invalid json": `{"persons":`,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Unmarshal([]byte(in)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSave(t *testing.T) {
	store, err := storage.NewFS(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	b := Sample()
	if err := b.Add(contact("Zed")); err != nil {
		t.Fatal(err)
	}
	data, err := Save(store, "book.json", b)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.Contains(string(data), `"Zed"`) {
		t.Errorf("saved data missing new contact")
	}

	onDisk, err := store.Read("book.json")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	again, err := Unmarshal(onDisk)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if again.Len() != b.Len() {
		t.Errorf("reloaded len = %d, want %d", again.Len(), b.Len())
	}
}

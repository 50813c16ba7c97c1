package book

import (
	"encoding/json"
	"fmt"

	"github.com/starford/findvisor/internal/datetime"
	"github.com/starford/findvisor/internal/models"
	"github.com/starford/findvisor/internal/storage"
)

type snapshot struct {
	Persons []personJSON `json:"persons"`
}

type personJSON struct {
	Name    string       `json:"name"`
	Phone   string       `json:"phone"`
	Email   string       `json:"email"`
	Address string       `json:"address"`
	Tags    []string     `json:"tags"`
	Meeting *meetingJSON `json:"meeting,omitempty"`
	Remark  *string      `json:"remark,omitempty"`
}

type meetingJSON struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Remark string `json:"remark"`
}

// Marshal encodes the contacts of b as JSON.
func Marshal(b *Book) ([]byte, error) {
	snap := snapshot{Persons: make([]personJSON, 0, b.Len())}
	for _, c := range b.contacts {
		snap.Persons = append(snap.Persons, toJSON(c))
	}
	return json.MarshalIndent(snap, "", "  ")
}

// Unmarshal decodes and validates contacts produced by Marshal.
func Unmarshal(data []byte) (*Book, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("book: decode: %w", err)
	}
	b := New()
	for i, p := range snap.Persons {
		c, err := fromJSON(p)
		if err != nil {
			return nil, fmt.Errorf("book: person %d: %w", i+1, err)
		}
		if err := b.Add(c); err != nil {
			return nil, fmt.Errorf("book: person %d: %w", i+1, err)
		}
	}
	return b, nil
}

// Save writes b to path and returns the bytes written.
func Save(store storage.Provider, path string, b *Book) ([]byte, error) {
	data, err := Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("book: encode: %w", err)
	}
	if err := store.Write(path, data); err != nil {
		return nil, err
	}
	return data, nil
}

func toJSON(c models.Contact) personJSON {
	p := personJSON{
		Name:    string(c.Name()),
		Phone:   string(c.Phone()),
		Email:   string(c.Email()),
		Address: string(c.Address()),
		Tags:    []string{},
	}
	for _, t := range c.Tags().Slice() {
		p.Tags = append(p.Tags, string(t))
	}
	if m, ok := c.Meeting().Get(); ok {
		p.Meeting = &meetingJSON{
			Start:  datetime.FormatDateTimeInput(m.Start()),
			End:    datetime.FormatDateTimeInput(m.End()),
			Remark: m.Remark(),
		}
	}
	if r, ok := c.Remark().Get(); ok {
		s := string(r)
		p.Remark = &s
	}
	return p
}

func fromJSON(p personJSON) (models.Contact, error) {
	name, err := models.NewName(p.Name)
	if err != nil {
		return models.Contact{}, err
	}
	phone, err := models.NewPhone(p.Phone)
	if err != nil {
		return models.Contact{}, err
	}
	email, err := models.NewEmail(p.Email)
	if err != nil {
		return models.Contact{}, err
	}
	address, err := models.NewAddress(p.Address)
	if err != nil {
		return models.Contact{}, err
	}
	tags := make([]models.Tag, 0, len(p.Tags))
	for _, s := range p.Tags {
		t, err := models.NewTag(s)
		if err != nil {
			return models.Contact{}, err
		}
		tags = append(tags, t)
	}

	meeting := models.None[models.Meeting]()
	if p.Meeting != nil {
		m, err := meetingFromJSON(*p.Meeting)
		if err != nil {
			return models.Contact{}, err
		}
		meeting = models.Some(m)
	}
	remark := models.None[models.Remark]()
	if p.Remark != nil {
		r, err := models.NewRemark(*p.Remark)
		if err != nil {
			return models.Contact{}, err
		}
		remark = models.Some(r)
	}
	return models.NewContact(name, phone, email, address, models.NewTagSet(tags...), meeting, remark), nil
}

func meetingFromJSON(m meetingJSON) (models.Meeting, error) {
	start, err := datetime.ParseDateTime(m.Start)
	if err != nil {
		return models.Meeting{}, fmt.Errorf("meeting start: %w", err)
	}
	end, err := datetime.ParseDateTime(m.End)
	if err != nil {
		return models.Meeting{}, fmt.Errorf("meeting end: %w", err)
	}
	return models.NewMeeting(start, end, m.Remark)
}

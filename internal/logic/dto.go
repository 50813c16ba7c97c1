package logic

import (
	"github.com/starford/findvisor/internal/datetime"
	"github.com/starford/findvisor/internal/models"
)

// ContactDTO is the JSON form of a displayed contact. Index is the 1-based
// position commands address it by.
type ContactDTO struct {
	Index   int         `json:"index"`
	Name    string      `json:"name"`
	Phone   string      `json:"phone"`
	Email   string      `json:"email"`
	Address string      `json:"address"`
	Tags    []string    `json:"tags"`
	Meeting *MeetingDTO `json:"meeting,omitempty"`
	Remark  *string     `json:"remark,omitempty"`
}

// MeetingDTO is the JSON form of a meeting, in dd-MM-yyyy HH:mm.
type MeetingDTO struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Remark string `json:"remark"`
}

// ContactsDTO is the JSON form of a View.
type ContactsDTO struct {
	Filter   string       `json:"filter"`
	Total    int          `json:"total"`
	Contacts []ContactDTO `json:"contacts"`
}

// DTO converts v for JSON responses.
func (v View) DTO() ContactsDTO {
	out := ContactsDTO{Filter: v.Filter, Total: v.Total, Contacts: make([]ContactDTO, len(v.Contacts))}
	for i, c := range v.Contacts {
		out.Contacts[i] = NewContactDTO(models.IndexFromZeroBased(i), c)
	}
	return out
}

// NewContactDTO converts the contact displayed at idx.
func NewContactDTO(idx models.Index, c models.Contact) ContactDTO {
	d := ContactDTO{
		Index:   idx.OneBased(),
		Name:    string(c.Name()),
		Phone:   string(c.Phone()),
		Email:   string(c.Email()),
		Address: string(c.Address()),
		Tags:    []string{},
	}
	for _, t := range c.Tags().Slice() {
		d.Tags = append(d.Tags, string(t))
	}
	if m, ok := c.Meeting().Get(); ok {
		d.Meeting = &MeetingDTO{
			Start:  datetime.FormatDateTime(m.Start()),
			End:    datetime.FormatDateTime(m.End()),
			Remark: m.Remark(),
		}
	}
	if r, ok := c.Remark().Get(); ok {
		s := string(r)
		d.Remark = &s
	}
	return d
}

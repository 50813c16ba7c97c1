// Package models defines the domain types for FindVisor.
package models

import (
	"fmt"
	"strings"
)

// Contact is an immutable person record. Edits produce a new Contact.
type Contact struct {
	name    Name
	phone   Phone
	email   Email
	address Address
	tags    TagSet
	meeting Option[Meeting]
	remark  Option[Remark]
}

// NewContact assembles a Contact from already validated fields.
func NewContact(name Name, phone Phone, email Email, address Address, tags TagSet,
	meeting Option[Meeting], remark Option[Remark]) Contact {
	return Contact{
		name:    name,
		phone:   phone,
		email:   email,
		address: address,
		tags:    tags,
		meeting: meeting,
		remark:  remark,
	}
}

func (c Contact) Name() Name { return c.name }
func (c Contact) Phone() Phone { return c.phone }
func (c Contact) Email() Email { return c.email }
func (c Contact) Address() Address { return c.address }
func (c Contact) Tags() TagSet { return c.tags }
func (c Contact) Meeting() Option[Meeting] { return c.meeting }
func (c Contact) Remark() Option[Remark] { return c.remark }

// WithTags returns a copy of c with tags replaced.
func (c Contact) WithTags(tags TagSet) Contact {
	c.tags = tags
	return c
}

// WithMeeting returns a copy of c with the meeting replaced.
func (c Contact) WithMeeting(m Meeting) Contact {
	c.meeting = Some(m)
	return c
}

// Equal reports whether every field of c and o is equal.
func (c Contact) Equal(o Contact) bool {
	if c.name != o.name || c.phone != o.phone || c.email != o.email || c.address != o.address {
		return false
	}
	if !c.tags.Equal(o.tags) {
		return false
	}
	cm, cok := c.meeting.Get()
	om, ook := o.meeting.Get()
	if cok != ook || (cok && !cm.Equal(om)) {
		return false
	}
	return c.remark == o.remark
}

// String formats c for result messages.
func (c Contact) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s; Phone: %s; Email: %s; Address: %s; Tags: ", c.name, c.phone, c.email, c.address)
	for _, t := range c.tags.Slice() {
		fmt.Fprintf(&b, "[%s]", t)
	}
	if m, ok := c.meeting.Get(); ok {
		fmt.Fprintf(&b, "; Meeting: %s", m)
	}
	if r, ok := c.remark.Get(); ok {
		fmt.Fprintf(&b, "; Remark: %s", r)
	}
	return b.String()
}

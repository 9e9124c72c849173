package tracker

import (
	"context"
	"strings"

	"github.com/matt-steen/ball-in-court/pkg/model"
	"github.com/rs/zerolog/log"
)

// AddContact appends a contact. The email is optional.
func (t *Tracker) AddContact(ctx context.Context, name, email string) (model.Contact, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Contact{}, ErrEmptyName
	}

	contact := model.Contact{
		ID:    t.newID(),
		Name:  name,
		Email: strings.TrimSpace(email),
	}

	t.contacts = append(t.contacts, contact)

	log.Debug().Str("id", contact.ID).Msgf("added contact '%s'", contact.Name)

	t.commit(ctx, Event{Kind: EventContactAdded, ID: contact.ID}, ContactsKey)

	return contact, nil
}

// DeleteContact removes a contact. Tasks handed off to it keep their copied name and email.
func (t *Tracker) DeleteContact(ctx context.Context, id string) error {
	i := t.contactIndex(id)
	if i < 0 {
		log.Debug().Str("id", id).Msg("delete: no such contact")

		return nil
	}

	t.contacts = append(t.contacts[:i:i], t.contacts[i+1:]...)

	t.commit(ctx, Event{Kind: EventContactDeleted, ID: id}, ContactsKey)

	return nil
}

// FindContact returns the first contact with the given name, ignoring case.
func (t *Tracker) FindContact(name string) (model.Contact, bool) {
	for _, c := range t.contacts {
		if strings.EqualFold(c.Name, strings.TrimSpace(name)) {
			return c, true
		}
	}

	return model.Contact{}, false
}

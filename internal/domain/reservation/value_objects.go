package reservation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const MaxNoteLength = 500

// Money is an amount in Korean won.
type Money struct {
	won int64
}

func NewMoney(won int64) Money {
	return Money{won: won}
}

func (m Money) Won() int64 {
	return m.won
}

func (m Money) Add(other Money) Money {
	return Money{won: m.won + other.won}
}

type Note struct {
	value string
}

func NewNote(value string) (Note, error) {
	value = strings.TrimSpace(value)
	if utf8.RuneCountInString(value) > MaxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: value}, nil
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}

var guestPhonePattern = regexp.MustCompile(`^01\d-?\d{3,4}-?\d{4}$`)

type Guest struct {
	name        string
	phoneNumber string
}

func NewGuest(name, phoneNumber string) (Guest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Guest{}, ErrEmptyGuestName
	}
	phoneNumber = strings.TrimSpace(phoneNumber)
	if !guestPhonePattern.MatchString(phoneNumber) {
		return Guest{}, ErrInvalidGuestPhone
	}
	return Guest{name: name, phoneNumber: phoneNumber}, nil
}

func (g Guest) Name() string        { return g.name }
func (g Guest) PhoneNumber() string { return g.phoneNumber }

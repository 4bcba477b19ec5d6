package space

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"gongsil-api/internal/domain/slot"
	"gongsil-api/internal/pkg/errs"
)

var (
	ErrEmptySpaceName      = errs.New("space name cannot be empty")
	ErrSpaceNameTooLong    = errs.New("space name is too long (max 100 characters)")
	ErrEmptyAddress        = errs.New("address cannot be empty")
	ErrInvalidPhoneNumber  = errs.New("invalid phone number")
	ErrInvalidMaxPeople    = errs.New("max people must be at least 1")
	ErrNegativePrice       = errs.New("price cannot be negative")
	ErrEmptyTimeTable      = errs.New("at least one available slot is required")
	ErrTooManyPhotos       = errs.New("too many photos (max 10)")
	ErrMemoTooLong         = errs.New("memo is too long (max 1000 characters)")
	ErrTooManyChips        = errs.New("too many chips (max 10)")
	ErrTooManyOptions      = errs.New("too many options (max 30)")
	ErrInvalidAccountValue = errs.New("account cannot be empty")
)

const (
	MaxSpaceNameLength = 100
	MaxMemoLength      = 1000
	MaxPhotos          = 10
	MaxChips           = 10
	MaxOptions         = 30
)

// 010-1234-5678, 02-123-4567, 0212345678 ...
var phonePattern = regexp.MustCompile(`^0\d{1,2}-?\d{3,4}-?\d{4}$`)

type Photo struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Space is a host's listing together with the slots it publishes as bookable.
type Space struct {
	name         string
	phoneNumber  string
	address      string
	account      string
	maxPeople    int
	pricePerHour int64
	memo         string
	optionList   []string
	chipList     []string
	availability *slot.Store
	photos       []Photo
}

type Params struct {
	Name         string
	PhoneNumber  string
	Address      string
	Account      string
	MaxPeople    int
	PricePerHour int64
	Memo         string
	OptionList   []string
	ChipList     []string
	Photos       []Photo
}

func NewSpace(p Params, availability *slot.Store) (*Space, error) {
	name := strings.TrimSpace(p.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	address := strings.TrimSpace(p.Address)
	if address == "" {
		return nil, ErrEmptyAddress
	}
	phone := strings.TrimSpace(p.PhoneNumber)
	if !phonePattern.MatchString(phone) {
		return nil, ErrInvalidPhoneNumber
	}
	account := strings.TrimSpace(p.Account)
	if account == "" {
		return nil, ErrInvalidAccountValue
	}
	if p.MaxPeople < 1 {
		return nil, ErrInvalidMaxPeople
	}
	if p.PricePerHour < 0 {
		return nil, ErrNegativePrice
	}
	memo := strings.TrimSpace(p.Memo)
	if utf8.RuneCountInString(memo) > MaxMemoLength {
		return nil, ErrMemoTooLong
	}
	if len(p.Photos) > MaxPhotos {
		return nil, ErrTooManyPhotos
	}
	options := compactLabels(p.OptionList)
	if len(options) > MaxOptions {
		return nil, ErrTooManyOptions
	}
	chips := compactLabels(p.ChipList)
	if len(chips) > MaxChips {
		return nil, ErrTooManyChips
	}
	if availability == nil || availability.TotalSlots() == 0 {
		return nil, ErrEmptyTimeTable
	}

	return &Space{
		name:         name,
		phoneNumber:  phone,
		address:      address,
		account:      account,
		maxPeople:    p.MaxPeople,
		pricePerHour: p.PricePerHour,
		memo:         memo,
		optionList:   options,
		chipList:     chips,
		availability: availability,
		photos:       p.Photos,
	}, nil
}

func validateName(name string) error {
	if name == "" {
		return ErrEmptySpaceName
	}
	if utf8.RuneCountInString(name) > MaxSpaceNameLength {
		return ErrSpaceNameTooLong
	}
	return nil
}

// compactLabels trims labels and drops blanks and repeats, keeping first-seen order.
func compactLabels(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func (s *Space) Name() string              { return s.name }
func (s *Space) PhoneNumber() string       { return s.phoneNumber }
func (s *Space) Address() string           { return s.address }
func (s *Space) Account() string           { return s.account }
func (s *Space) MaxPeople() int            { return s.maxPeople }
func (s *Space) PricePerHour() int64       { return s.pricePerHour }
func (s *Space) Memo() string              { return s.memo }
func (s *Space) OptionList() []string      { return s.optionList }
func (s *Space) ChipList() []string        { return s.chipList }
func (s *Space) Availability() *slot.Store { return s.availability }
func (s *Space) Photos() []Photo           { return s.photos }
func (s *Space) TimeTable() []slot.Entry   { return s.availability.Entries() }
func (s *Space) AvailableHours() float64   { return s.availability.TotalHours() }

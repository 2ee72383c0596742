// Package locale loads the per-language corpora (names, job titles,
// telephone formats, streets) that person generation draws from.
package locale

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yml
var dataFS embed.FS

// Default is the locale used when none is requested.
const Default = "en"

// Corpus categories.
const (
	FirstNames             = "firstNames"
	LastNames              = "lastNames"
	TelephoneNumberFormats = "telephoneNumberFormats"
	JobTitles              = "jobTitles"
	FreeEmailDomains       = "freeEmailDomains"
	EmailAliases           = "emailAliases"
	CompanyNames           = "companyNames"
	CompanySuffixes        = "companySuffixes"
	DomainSuffixes         = "domainSuffixes"
	Streets                = "streets"
	Cities                 = "cities"
)

// Scalar formats.
const (
	FormatPostalCode   = "postalCode"
	FormatAddressLine1 = "addressLine1"
	FormatAddressLine2 = "addressLine2"
	FormatApartment    = "apartment"
	FormatIdentityCard = "identityCard"
	FormatPassport     = "passport"
	FormatVATNumber    = "vatNumber"
)

var (
	// ErrNoData is returned when a category, sub-key or format has no entries.
	ErrNoData = errors.New("no locale data")
	// ErrUnknownLocale is returned for a tag without a data file.
	ErrUnknownLocale = errors.New("unknown locale")
)

// Picker draws one element from a list.
type Picker interface {
	Pick(values []string) string
}

// Corpus is the parsed, read-only data of one locale.
type Corpus struct {
	tag        string
	formats    map[string]string
	categories map[string]category
}

// category is either a flat list or lists keyed by a sub-key such as sex.
type category struct {
	values []string
	keyed  map[string][]string
}

type document struct {
	Formats    map[string]string   `yaml:"formats"`
	Categories map[string]category `yaml:",inline"`
}

func (c *category) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}

	switch node.Kind {
	case yaml.SequenceNode:
		return node.Decode(&c.values)
	case yaml.MappingNode:
		return node.Decode(&c.keyed)
	default:
		return fmt.Errorf("line %d: category must be a list or a mapping of lists", node.Line)
	}
}

// Supported returns the available locale tags in sorted order.
func Supported() []string {
	entries, err := fs.ReadDir(dataFS, "data")
	if err != nil {
		return nil
	}

	var tags []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".yml"); ok {
			tags = append(tags, name)
		}
	}
	sort.Strings(tags)
	return tags
}

// Open parses the embedded data file for tag. An empty tag selects Default.
func Open(tag string) (*Corpus, error) {
	if tag == "" {
		tag = Default
	}
	tag = strings.ToLower(tag)

	raw, err := dataFS.ReadFile(path.Join("data", tag+".yml"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("open locale %q: %w", tag, ErrUnknownLocale)
		}
		return nil, fmt.Errorf("open locale %q: %w", tag, err)
	}

	return Parse(tag, raw)
}

// Parse decodes a locale document.
func Parse(tag string, raw []byte) (*Corpus, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", tag, err)
	}

	return &Corpus{
		tag:        tag,
		formats:    doc.Formats,
		categories: doc.Categories,
	}, nil
}

// Tag returns the locale tag, e.g. "pl".
func (c *Corpus) Tag() string {
	return c.tag
}

// Values returns the entries of a category. A non-empty subKey selects a
// keyed list; an empty subKey selects a flat list.
func (c *Corpus) Values(name, subKey string) ([]string, error) {
	cat, ok := c.categories[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w: %s", c.tag, ErrNoData, name)
	}

	var values []string
	if subKey == "" {
		values = cat.values
	} else {
		values = cat.keyed[strings.ToLower(subKey)]
	}

	if len(values) == 0 {
		if subKey == "" {
			return nil, fmt.Errorf("%s: %w: %s", c.tag, ErrNoData, name)
		}
		return nil, fmt.Errorf("%s: %w: %s[%s]", c.tag, ErrNoData, name, subKey)
	}
	return values, nil
}

// Format returns a named scalar format such as the postal code pattern.
func (c *Corpus) Format(name string) (string, error) {
	f, ok := c.formats[name]
	if !ok || f == "" {
		return "", fmt.Errorf("%s: %w: format %s", c.tag, ErrNoData, name)
	}
	return f, nil
}

// Data draws random values from a corpus.
type Data struct {
	*Corpus
	picker Picker
}

// NewData binds a corpus to a random source.
func NewData(c *Corpus, p Picker) *Data {
	return &Data{Corpus: c, picker: p}
}

// ValuesOfType draws one entry from a keyed category.
func (d *Data) ValuesOfType(name, subKey string) (string, error) {
	values, err := d.Values(name, subKey)
	if err != nil {
		return "", err
	}
	return d.picker.Pick(values), nil
}

// RandomValue draws one entry from a flat category.
func (d *Data) RandomValue(name string) (string, error) {
	return d.ValuesOfType(name, "")
}

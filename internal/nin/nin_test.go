package nin

import (
	"errors"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/zarlcorp/zpersona/internal/person"
	"github.com/zarlcorp/zpersona/internal/random"
)

func validPESEL(s string) bool {
	if len(s) != 11 {
		return false
	}
	sum := 0
	for i, w := range peselWeights {
		sum += int(s[i]-'0') * w
	}
	return (10-sum%10)%10 == int(s[10]-'0')
}

func TestPESEL(t *testing.T) {
	f := New("pl", random.New(1))

	tests := []struct {
		name   string
		dob    time.Time
		sex    person.Sex
		prefix string
	}{
		{"twentieth century", time.Date(1985, 7, 3, 0, 0, 0, 0, time.UTC), person.Male, "850703"},
		{"twenty-first century", time.Date(2004, 12, 31, 0, 0, 0, 0, time.UTC), person.Female, "043231"},
		{"nineteenth century", time.Date(1899, 1, 9, 0, 0, 0, 0, time.UTC), person.Female, "998109"},
		{"twenty-second century", time.Date(2101, 2, 1, 0, 0, 0, 0, time.UTC), person.Male, "014201"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 50 {
				got, err := f.Produce(tt.dob, tt.sex)
				if err != nil {
					t.Fatalf("produce: %v", err)
				}
				if got[:6] != tt.prefix {
					t.Fatalf("PESEL %q should start with %q", got, tt.prefix)
				}
				if !validPESEL(got) {
					t.Fatalf("PESEL %q fails its checksum", got)
				}

				sexDigit, _ := strconv.Atoi(got[9:10])
				if male := sexDigit%2 == 1; male != (tt.sex == person.Male) {
					t.Fatalf("PESEL %q sex digit does not match %s", got, tt.sex)
				}
			}
		})
	}
}

func TestPESELKnownChecksum(t *testing.T) {
	// commonly cited example number
	if !validPESEL("44051401359") {
		t.Error("44051401359 should be valid")
	}
}

func TestPESELUnsupportedSex(t *testing.T) {
	f := New("pl", random.New(1))
	_, err := f.Produce(time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), person.Sex("other"))
	if !errors.Is(err, ErrUnsupportedSex) {
		t.Fatalf("produce = %v, want ErrUnsupportedSex", err)
	}
}

func TestPESELYearOutOfRange(t *testing.T) {
	f := New("pl", random.New(1))
	_, err := f.Produce(time.Date(1750, 1, 1, 0, 0, 0, 0, time.UTC), person.Male)
	if err == nil {
		t.Fatal("expected error for 1750")
	}
}

func TestSSN(t *testing.T) {
	f := New("en", random.New(2))
	re := regexp.MustCompile(`^(\d{3})-(\d{2})-(\d{4})$`)

	for range 500 {
		got, err := f.Produce(time.Now(), person.Female)
		if err != nil {
			t.Fatalf("produce: %v", err)
		}
		m := re.FindStringSubmatch(got)
		if m == nil {
			t.Fatalf("SSN %q has wrong shape", got)
		}
		area, _ := strconv.Atoi(m[1])
		if area == 0 || area == 666 || area >= 900 {
			t.Fatalf("SSN %q has an unissued area", got)
		}
		if m[2] == "00" || m[3] == "0000" {
			t.Fatalf("SSN %q has a zero group or serial", got)
		}
	}
}

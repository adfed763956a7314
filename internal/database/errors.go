package database

import (
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
)

// Kind classifies a database failure for operator feedback.
type Kind int

const (
	KindOther Kind = iota
	KindAuth
	KindMissingDatabase
)

// MySQL server error numbers.
const (
	erAccessDenied = 1045
	erBadDB        = 1049
)

func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindMissingDatabase:
		return "missing_database"
	default:
		return "other"
	}
}

// Classify inspects err for the driver error numbers of interest.
func Classify(err error) Kind {
	if err == nil {
		return KindOther
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case erAccessDenied:
			return KindAuth
		case erBadDB:
			return KindMissingDatabase
		}
		return KindOther
	}
	if strings.Contains(err.Error(), "no such table") {
		return KindMissingDatabase
	}
	return KindOther
}

// Describe renders the console message for a failure.
func Describe(err error) string {
	var code string
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		code = fmt.Sprintf(" Error Code: %d", myErr.Number)
	}
	switch Classify(err) {
	case KindAuth:
		return "Error: The supplied username or password are invalid." + code
	case KindMissingDatabase:
		return "Error: The specified database does not exist." + code
	default:
		return fmt.Sprintf("General database error: %v", err)
	}
}

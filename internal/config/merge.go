package config

import "github.com/mwalker/jdfile/internal/dates"

// FlagOverrides carries command-line values that take precedence over
// the config file. Nil pointers mean the flag was not set.
type FlagOverrides struct {
	DateFormat     *string
	FormatDates    *bool
	InsertLocation *InsertLocation
	Separator      *Separator
	TransformCase  *TransformCase
	SplitWords     *bool
	StripStopwords *bool
	Overwrite      *bool
	UseSynonyms    *bool
}

// MergeWithFlags applies the set flags over s. The date format template
// is re-validated since it may arrive straight from the command line.
func (s *Settings) MergeWithFlags(o FlagOverrides) error {
	if o.DateFormat != nil {
		if err := dates.ValidateTemplate(*o.DateFormat); err != nil {
			return err
		}
		s.DateFormat = *o.DateFormat
	}
	if o.FormatDates != nil {
		s.FormatDates = *o.FormatDates
	}
	if o.InsertLocation != nil {
		s.InsertLocation = *o.InsertLocation
	}
	if o.Separator != nil {
		s.Separator = *o.Separator
	}
	if o.TransformCase != nil {
		s.TransformCase = *o.TransformCase
	}
	if o.SplitWords != nil {
		s.SplitWords = *o.SplitWords
	}
	if o.StripStopwords != nil {
		s.StripStopwords = *o.StripStopwords
	}
	if o.Overwrite != nil {
		s.Overwrite = *o.Overwrite
	}
	if o.UseSynonyms != nil {
		s.UseSynonyms = *o.UseSynonyms
	}
	return nil
}

package model

import log "github.com/sirupsen/logrus"

// Stats represents the counters of an expansion run
type Stats struct {
	Wordlist       string `json:"wordlist"`
	BaseCount      int    `json:"base_count"`
	EstimatedCount int    `json:"estimated_count"`
	Emitted        int    `json:"emitted"`
}

// Fields returns the stats as logrus fields
func (s Stats) Fields() log.Fields {
	return log.Fields{
		"wordlist":  s.Wordlist,
		"base":      s.BaseCount,
		"estimated": s.EstimatedCount,
		"emitted":   s.Emitted,
	}
}

package models

// EvidenceResult - итог обработки видеодоказательства: кому ушел отчет
// и что нашло распознавание
type EvidenceResult struct {
	StationName          string `json:"station_name"`
	StationEmail         string `json:"station_email"`
	MatchCount           int    `json:"match_count"`
	UnknownCount         int    `json:"unknown_count"`
	RecognitionAvailable bool   `json:"recognition_available"`
}

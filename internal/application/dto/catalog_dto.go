package dto

import "time"

// CreateObjectiveRequest adds a project objective catalog entry.
type CreateObjectiveRequest struct {
	Title   string `json:"title" validate:"required,max=255"`
	Measure string `json:"measure" validate:"max=255"`
}

// CreateChecklistItemRequest adds a safety checklist entry.
type CreateChecklistItemRequest struct {
	Description string `json:"description" validate:"required,max=512"`
}

// CreateHazardRequest adds a site or people hazard catalog entry.
type CreateHazardRequest struct {
	Title string `json:"title" validate:"required,max=512"`
}

// CreatePredatorRecordRequest reports one predator-control outcome.
type CreatePredatorRecordRequest struct {
	ProjectID  int       `json:"project_id" validate:"required,gt=0"`
	SubType    string    `json:"sub_type" validate:"required,oneof=traps_established traps_checked catches"`
	Measured   int       `json:"measured" validate:"gte=0"`
	RecordDate time.Time `json:"record_date"`
	Rats       int       `json:"rats" validate:"gte=0"`
	Possums    int       `json:"possums" validate:"gte=0"`
	Mustelids  int       `json:"mustelids" validate:"gte=0"`
	Hedgehogs  int       `json:"hedgehogs" validate:"gte=0"`
	Others     int       `json:"others" validate:"gte=0"`
	OthersDesc string    `json:"others_description" validate:"max=255"`
}

// UpdatePredatorRecordRequest updates a predator-control record.
type UpdatePredatorRecordRequest struct {
	SubType    string    `json:"sub_type" validate:"required,oneof=traps_established traps_checked catches"`
	Measured   int       `json:"measured" validate:"gte=0"`
	RecordDate time.Time `json:"record_date"`
	Rats       int       `json:"rats" validate:"gte=0"`
	Possums    int       `json:"possums" validate:"gte=0"`
	Mustelids  int       `json:"mustelids" validate:"gte=0"`
	Hedgehogs  int       `json:"hedgehogs" validate:"gte=0"`
	Others     int       `json:"others" validate:"gte=0"`
	OthersDesc string    `json:"others_description" validate:"max=255"`
}

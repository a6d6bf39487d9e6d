package dto

import "github.com/sue-zadeh/fieldbase/internal/domain/repository"

// RateRequest asks for the qualitative rating of a band pair.
type RateRequest struct {
	Likelihood  string `form:"likelihood" json:"likelihood"`
	Consequence string `form:"consequence" json:"consequence"`
}

// RateResponse returns the derived rating. Rating is empty until both bands
// are supplied.
type RateResponse struct {
	Likelihood  string `json:"likelihood"`
	Consequence string `json:"consequence"`
	Rating      string `json:"rating"`
}

// MatrixResponse lists the closed band enumerations for form rendering.
type MatrixResponse struct {
	Likelihoods  []string `json:"likelihoods"`
	Consequences []string `json:"consequences"`
	Ratings      []string `json:"ratings"`
}

// CreateRiskTitleRequest adds a catalog risk title.
type CreateRiskTitleRequest struct {
	Title string `json:"title" validate:"required,max=255"`
}

// CreateRiskControlRequest adds a control under a risk title.
type CreateRiskControlRequest struct {
	RiskTitleID int    `json:"risk_title_id" validate:"required,gt=0"`
	ControlText string `json:"control_text" validate:"required,max=512"`
}

// CreateAssessmentRequest creates a risk instance, attaches it to the owner
// named in the URL and stores the chosen controls, all in one transaction.
type CreateAssessmentRequest struct {
	RiskTitleID int    `json:"risk_title_id" validate:"required,gt=0"`
	Likelihood  string `json:"likelihood" validate:"required"`
	Consequence string `json:"consequence" validate:"required"`
	ControlIDs  []int  `json:"control_ids"`
}

// UpdateAssessmentRequest rewrites an owner's assessment of an attached risk:
// new bands (the rating is recomputed server-side) and the full replacement
// control set.
type UpdateAssessmentRequest struct {
	Likelihood  string `json:"likelihood" validate:"required"`
	Consequence string `json:"consequence" validate:"required"`
	ControlIDs  []int  `json:"control_ids"`
}

// AssessmentResponse is the created/updated assessment summary.
type AssessmentResponse struct {
	RiskInstanceID int    `json:"risk_instance_id"`
	RiskTitleID    int    `json:"risk_title_id"`
	Likelihood     string `json:"likelihood"`
	Consequence    string `json:"consequence"`
	Rating         string `json:"rating"`
}

// OwnerRisksResponse lists an owner's attached risks and chosen controls.
type OwnerRisksResponse struct {
	Risks    []repository.OwnerRiskRow    `json:"risks"`
	Controls []repository.OwnerControlRow `json:"controls"`
}

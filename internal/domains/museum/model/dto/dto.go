package dto

import (
	"darshan/internal/domains/museum/model"
	"darshan/shared"
	gDto "darshan/shared/dto"

	"github.com/shopspring/decimal"
)

type UpdateMuseumRequest struct {
	Location         string           `db:"location"          json:"location"          validate:"omitempty,max=255"`
	IndianAdultFee   *decimal.Decimal `db:"indian_adult_fee"  json:"indian_adult_fee"  validate:"omitempty,gte=0"`
	IndianChildFee   *decimal.Decimal `db:"indian_child_fee"  json:"indian_child_fee"  validate:"omitempty,gte=0"`
	InternationalFee *decimal.Decimal `db:"international_fee" json:"international_fee" validate:"omitempty,gte=0"`
	CameraFee        *decimal.Decimal `db:"camera_fee"        json:"camera_fee"        validate:"omitempty,gte=0"`
	FreeForStudents  *bool            `db:"free_for_students" json:"free_for_students"`
	Timings          string           `db:"timings"           json:"timings"           validate:"omitempty,max=255"`
	ClosedOn         string           `db:"closed_on"         json:"closed_on"         validate:"omitempty,max=255"`
}

func (r UpdateMuseumRequest) IsEmpty() bool {
	return r.Location == "" &&
		r.IndianAdultFee == nil &&
		r.IndianChildFee == nil &&
		r.InternationalFee == nil &&
		r.CameraFee == nil &&
		r.FreeForStudents == nil &&
		r.Timings == "" &&
		r.ClosedOn == ""
}

type MuseumResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Location         string `json:"location"`
	IndianAdultFee   string `json:"indian_adult_fee"`
	IndianChildFee   string `json:"indian_child_fee"`
	InternationalFee string `json:"international_fee"`
	CameraFee        string `json:"camera_fee"`
	FreeForStudents  bool   `json:"free_for_students"`
	Timings          string `json:"timings"`
	ClosedOn         string `json:"closed_on"`
	gDto.Metadata
}

func (r *MuseumResponse) FromModel(model model.Museum) {
	r.ID = model.ID
	r.Name = model.Name
	r.Location = model.Location
	r.IndianAdultFee = model.IndianAdultFee.StringFixed(2)
	r.IndianChildFee = model.IndianChildFee.StringFixed(2)
	r.InternationalFee = model.InternationalFee.StringFixed(2)
	r.CameraFee = model.CameraFee.StringFixed(2)
	r.FreeForStudents = model.FreeForStudents
	r.Timings = model.Timings
	r.ClosedOn = model.ClosedOn
	r.Metadata.FromModel(model.Metadata)
}

type GetMuseumsResponse struct {
	Museums   []MuseumResponse `json:"museums"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetMuseumsResponse) FromModels(models []model.Museum, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Museums = make([]MuseumResponse, len(models))
	for i, mod := range models {
		r.Museums[i].FromModel(mod)
	}
}

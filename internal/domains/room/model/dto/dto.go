package dto

import (
	"hotel/internal/domains/room/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
	"hotel/shared/validator"
	"maps"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	FormNumber      = "number"
	FormType        = "type"
	FormDescription = "description"
	FormPrice       = "price"
	FormImage       = "image"
)

type CreateRoomRequest struct {
	Number      int                   `json:"number"      validate:"required,min=1"`
	Type        model.Type            `json:"type"        validate:"required,enum"`
	Description string                `json:"description" validate:"required,max=500"`
	Price       *float64              `json:"price"       validate:"required,gte=0"`
	Image       *multipart.FileHeader `json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=2"`
}

// Bind reads a multipart room form and validates it. Values that cannot be parsed are reported
// on their own field alongside the rule violations of the others.
func (c *CreateRoomRequest) Bind(request *http.Request) error {
	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return failure.BadRequest(err) //nolint:wrapcheck
	}

	parseErrors := map[string]string{}

	c.Type = model.Type(request.FormValue(FormType))
	c.Description = request.FormValue(FormDescription)

	if raw := request.FormValue(FormNumber); raw != constant.Empty {
		number, err := shared.ConvertStringToInt(raw)
		if err != nil {
			parseErrors[FormNumber] = "number must be a whole number"
		}

		c.Number = number
	}

	if raw := request.FormValue(FormPrice); raw != constant.Empty {
		price, err := shared.ConvertStringToFloat(raw)
		if err != nil {
			parseErrors[FormPrice] = "price must be a number"
		} else {
			c.Price = &price
		}
	}

	if _, fileHeader, err := request.FormFile(FormImage); err == nil {
		c.Image = fileHeader
	}

	return mergeValidation(validator.ValidateStruct(c), parseErrors)
}

func (c *CreateRoomRequest) ToModel(imagePath string) model.Room {
	now := timezone.Now()

	price := 0.0
	if c.Price != nil {
		price = *c.Price
	}

	return model.Room{
		ID:            uuid.NewString(),
		Number:        c.Number,
		Type:          c.Type,
		Description:   c.Description,
		Price:         price,
		LastCleanedAt: now,
		Incidences:    model.Incidences{},
		ImagePath:     imagePath,
		Revision:      0,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}
}

// UpdateRoomRequest holds a partial update. Revision, when sent, must match the stored room.
type UpdateRoomRequest struct {
	Number      int        `db:"number"      json:"number"      validate:"omitempty,min=1"`
	Type        model.Type `db:"type"        json:"type"        validate:"omitempty,enum"`
	Description string     `db:"description" json:"description" validate:"omitempty,max=500"`
	Price       *float64   `db:"price"       json:"price"       validate:"omitempty,gte=0"`
	Revision    *int       `db:"-"           json:"revision"    validate:"omitempty,min=0"`
}

func (u *UpdateRoomRequest) IsEmpty() bool {
	return u.Number == 0 && u.Type == constant.Empty && u.Description == constant.Empty && u.Price == nil
}

// Fields returns the columns to write. Revision is bumped by the repository.
func (u *UpdateRoomRequest) Fields() map[string]any {
	fields := shared.TransformFields(*u)

	if u.Price != nil {
		fields[model.FieldPrice] = *u.Price
	}

	return fields
}

type AddIncidenceRequest struct {
	Description string `json:"description" validate:"required,max=500"`
}

type IncidenceResponse struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	OpenedAt    time.Time  `json:"opened_at"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
	Open        bool       `json:"open"`
}

func (i *IncidenceResponse) FromModel(incidence model.Incidence) {
	i.ID = incidence.ID
	i.Description = incidence.Description
	i.OpenedAt = timezone.ToAppTime(incidence.OpenedAt)
	i.Open = incidence.IsOpen()

	if incidence.ClosedAt != nil {
		closedAt := timezone.ToAppTime(*incidence.ClosedAt)
		i.ClosedAt = &closedAt
	}
}

type RoomResponse struct {
	ID             string              `json:"id"`
	Number         int                 `json:"number"`
	Type           model.Type          `json:"type"`
	Description    string              `json:"description"`
	Price          float64             `json:"price"`
	LastCleanedAt  time.Time           `json:"last_cleaned_at"`
	Incidences     []IncidenceResponse `json:"incidences"`
	OpenIncidences int                 `json:"open_incidences"`
	ImagePath      string              `json:"image_path,omitempty"`
	Revision       int                 `json:"revision"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.Type = model.Type
	r.Description = model.Description
	r.Price = model.Price
	r.LastCleanedAt = timezone.ToAppTime(model.LastCleanedAt)
	r.ImagePath = model.ImagePath
	r.Revision = model.Revision
	r.OpenIncidences = model.Incidences.Open()
	r.Metadata.FromModel(model.Metadata)

	r.Incidences = make([]IncidenceResponse, len(model.Incidences))
	for i, incidence := range model.Incidences {
		r.Incidences[i].FromModel(incidence)
	}
}

type RoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
	Total int            `json:"total"`
}

func (r *RoomsResponse) FromModels(models []model.Room) {
	r.Total = len(models)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type TypesResponse struct {
	Types []model.Type `json:"types"`
}

func mergeValidation(err error, parseErrors map[string]string) error {
	if len(parseErrors) == 0 {
		return err
	}

	fields := map[string]string{}
	maps.Copy(fields, failure.GetFields(err))
	maps.Copy(fields, parseErrors)

	for _, field := range []string{FormNumber, FormType, FormDescription, FormPrice, FormImage} {
		if msg, exists := fields[field]; exists {
			return failure.Validation(msg, fields) //nolint:wrapcheck
		}
	}

	return failure.Validation("invalid room form", fields) //nolint:wrapcheck
}

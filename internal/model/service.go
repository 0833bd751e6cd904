package model

// Service is an offering listed on the site. It is never updated in place.
type Service struct {
	Base        `bson:",inline"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	ServiceCost float64 `bson:"serviceCost" json:"serviceCost"`
	Image       string  `bson:"image,omitempty" json:"image,omitempty"`
}

type CreateServiceRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description" validate:"max=5000"`
	ServiceCost float64 `json:"serviceCost" validate:"gte=0"`
	Image       string  `json:"image" validate:"omitempty,url"`
}

func (r *CreateServiceRequest) Validate() error {
	return validate(r)
}

func (r *CreateServiceRequest) Document() *Service {
	return &Service{
		Name:        r.Name,
		Description: r.Description,
		ServiceCost: r.ServiceCost,
		Image:       r.Image,
	}
}

type GetServiceRequest struct {
	ServiceID string `param:"serviceId" json:"-" validate:"required,objectid"`
}

func (r *GetServiceRequest) Validate() error {
	return validate(r)
}

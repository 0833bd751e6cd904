package model

import (
	"math"
	"strconv"
	"time"

	"github.com/deppfellow/luxury-living/internal/validation"
)

// OrderStatusPending is assigned to orders created without a status.
const OrderStatusPending = "Pending"

type OrderPayment struct {
	TransactionID string  `bson:"transactionId,omitempty" json:"transactionId,omitempty" validate:"max=255"`
	Amount        float64 `bson:"amount,omitempty" json:"amount,omitempty" validate:"gte=0"`
	Last4         string  `bson:"last4,omitempty" json:"last4,omitempty" validate:"omitempty,len=4,numeric"`
}

type Order struct {
	Base        `bson:",inline"`
	Email       string        `bson:"email" json:"email"`
	Name        string        `bson:"name,omitempty" json:"name,omitempty"`
	Phone       string        `bson:"phone,omitempty" json:"phone,omitempty"`
	Address     string        `bson:"address,omitempty" json:"address,omitempty"`
	ServiceID   string        `bson:"serviceId,omitempty" json:"serviceId,omitempty"`
	ServiceName string        `bson:"serviceName,omitempty" json:"serviceName,omitempty"`
	ServiceCost float64       `bson:"serviceCost" json:"serviceCost"`
	Status      string        `bson:"status" json:"status"`
	Payment     *OrderPayment `bson:"payment,omitempty" json:"payment,omitempty"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
}

// OrderPage answers GET /orderList. Count is always the unpaginated total.
type OrderPage struct {
	Count     int64   `json:"count"`
	OrderList []Order `json:"orderList"`
}

type CreateOrderRequest struct {
	Email       string        `json:"email" validate:"required,email"`
	Name        string        `json:"name" validate:"max=120"`
	Phone       string        `json:"phone" validate:"max=40"`
	Address     string        `json:"address" validate:"max=500"`
	ServiceID   string        `json:"serviceId" validate:"omitempty,objectid"`
	ServiceName string        `json:"serviceName" validate:"max=200"`
	ServiceCost float64       `json:"serviceCost" validate:"gte=0"`
	Status      string        `json:"status" validate:"max=50"`
	Payment     *OrderPayment `json:"payment"`
}

func (r *CreateOrderRequest) Validate() error {
	return validate(r)
}

func (r *CreateOrderRequest) Document(now time.Time) *Order {
	status := r.Status
	if status == "" {
		status = OrderStatusPending
	}

	return &Order{
		Email:       r.Email,
		Name:        r.Name,
		Phone:       r.Phone,
		Address:     r.Address,
		ServiceID:   r.ServiceID,
		ServiceName: r.ServiceName,
		ServiceCost: r.ServiceCost,
		Status:      status,
		Payment:     r.Payment,
		CreatedAt:   now.UTC(),
	}
}

// ListOrdersRequest carries the optional page/size query. Both stay strings
// so that a non-numeric value is reported as a field error instead of a
// bind failure.
type ListOrdersRequest struct {
	Page string `query:"page"`
	Size string `query:"size"`
}

func (r *ListOrdersRequest) Validate() error {
	_, _, _, err := r.parse()
	return err
}

// Window returns the skip and limit to apply. paged is false when no page
// was requested, in which case every order is returned.
func (r *ListOrdersRequest) Window() (skip, limit int64, paged bool) {
	page, size, paged, err := r.parse()
	if err != nil || !paged {
		return 0, 0, false
	}
	return page * size, size, true
}

func (r *ListOrdersRequest) parse() (page, size int64, paged bool, err error) {
	if r.Page == "" {
		return 0, 0, false, nil
	}

	var problems validation.CustomValidationErrors

	page, perr := strconv.ParseInt(r.Page, 10, 64)
	if perr != nil || page < 0 {
		problems = append(problems, validation.CustomValidationError{
			Field:   "page",
			Message: "must be a non-negative integer",
		})
	}

	switch {
	case r.Size == "":
		problems = append(problems, validation.CustomValidationError{
			Field:   "size",
			Message: "is required when page is set",
		})
	default:
		var serr error
		size, serr = strconv.ParseInt(r.Size, 10, 64)
		if serr != nil || size < 1 {
			problems = append(problems, validation.CustomValidationError{
				Field:   "size",
				Message: "must be a positive integer",
			})
		}
	}

	if len(problems) == 0 && page > math.MaxInt64/size {
		problems = append(problems, validation.CustomValidationError{
			Field:   "page",
			Message: "is too large for the page size",
		})
	}

	if len(problems) > 0 {
		return 0, 0, false, problems
	}
	return page, size, true, nil
}

type ListOrdersByEmailRequest struct {
	Email string `param:"email" json:"-" validate:"required"`
}

func (r *ListOrdersByEmailRequest) Validate() error {
	return validate(r)
}

// UpdateOrderRequest is the body of PUT /orderList/:id. Only non-nil fields
// are written.
type UpdateOrderRequest struct {
	ID          string        `param:"id" json:"-" validate:"required,objectid"`
	Email       *string       `json:"email" validate:"omitempty,email"`
	Name        *string       `json:"name" validate:"omitempty,max=120"`
	Phone       *string       `json:"phone" validate:"omitempty,max=40"`
	Address     *string       `json:"address" validate:"omitempty,max=500"`
	ServiceID   *string       `json:"serviceId" validate:"omitempty,objectid"`
	ServiceName *string       `json:"serviceName" validate:"omitempty,max=200"`
	ServiceCost *float64      `json:"serviceCost" validate:"omitempty,gte=0"`
	Status      *string       `json:"status" validate:"omitempty,max=50"`
	Payment     *OrderPayment `json:"payment"`
}

func (r *UpdateOrderRequest) Validate() error {
	if err := validate(r); err != nil {
		return err
	}
	if len(r.Fields()) == 0 {
		return validation.CustomValidationErrors{{
			Field:   "body",
			Message: "at least one field must be provided",
		}}
	}
	return nil
}

// Fields is the $set document built from the provided fields.
func (r *UpdateOrderRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	set := func(key string, v *string) {
		if v != nil {
			fields[key] = *v
		}
	}

	set("email", r.Email)
	set("name", r.Name)
	set("phone", r.Phone)
	set("address", r.Address)
	set("serviceId", r.ServiceID)
	set("serviceName", r.ServiceName)
	set("status", r.Status)
	if r.ServiceCost != nil {
		fields["serviceCost"] = *r.ServiceCost
	}
	if r.Payment != nil {
		fields["payment"] = r.Payment
	}
	return fields
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductTypes is the closed set of values accepted for product_type.
var ProductTypes = []string{"2D Laser-cut", "3D Trophy", "3D Mockup", "Other"}

// EnquiryIn is the inbound enquiry submission shape. Validation tags mirror
// the enquiry schema: name/email/message/product_type required, email must
// be syntactically valid, product_type must be one of ProductTypes and
// quantity, when present, must be at least 1.
type EnquiryIn struct {
	Name         string  `json:"name" bson:"name" validate:"required"`
	Email        string  `json:"email" bson:"email" validate:"required,email"`
	Phone        *string `json:"phone,omitempty" bson:"phone,omitempty"`
	Company      *string `json:"company,omitempty" bson:"company,omitempty"`
	ProductType  string  `json:"product_type" bson:"product_type" validate:"required,oneof='2D Laser-cut' '3D Trophy' '3D Mockup' Other"`
	Quantity     *int    `json:"quantity,omitempty" bson:"quantity,omitempty" validate:"omitempty,gte=1"`
	BudgetRange  *string `json:"budget_range,omitempty" bson:"budget_range,omitempty"`
	Message      string  `json:"message" bson:"message" validate:"required"`
	ReferenceURL *string `json:"reference_url,omitempty" bson:"reference_url,omitempty"`
}

// Enquiry is the stored enquiry document: the validated input plus the
// store-assigned identity and submission timestamp. Enquiries are written
// once and never updated or deleted.
type Enquiry struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	EnquiryIn `bson:",inline"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// EnquiryOut is the response returned after a successful submission.
type EnquiryOut struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

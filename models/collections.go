package models

// Kind identifies a record kind with a backing collection.
type Kind string

const (
	KindUser    Kind = "user"
	KindProduct Kind = "product"
	KindEnquiry Kind = "enquiry"
)

// Collections maps each record kind to its MongoDB collection name.
// The mapping is fixed at compile time rather than derived from type names.
var Collections = map[Kind]string{
	KindUser:    "user",
	KindProduct: "product",
	KindEnquiry: "enquiry",
}

// CollectionName returns the collection backing the given record kind.
func CollectionName(k Kind) string {
	return Collections[k]
}

package payload

// The domain model is a deliberately deep object graph: one user aggregates
// a profile, addresses, orders (with items, payment and tracking events),
// social connections, skills, education and languages. All monetary and
// geographic decimals are fixed-precision strings, all timestamps are epoch
// milliseconds, so every backend serializes exactly the same value space.

// AddressType classifies an address.
type AddressType string

const (
	AddressHome     AddressType = "HOME"
	AddressWork     AddressType = "WORK"
	AddressBilling  AddressType = "BILLING"
	AddressShipping AddressType = "SHIPPING"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderShipped   OrderStatus = "SHIPPED"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// PaymentMethod identifies how an order was paid.
type PaymentMethod string

const (
	PaymentCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentDebitCard    PaymentMethod = "DEBIT_CARD"
	PaymentPaypal       PaymentMethod = "PAYPAL"
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
)

// PaymentStatus is the processing state of a payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

// TrackingEventType classifies a shipment tracking event.
type TrackingEventType string

const (
	TrackingOrderPlaced TrackingEventType = "ORDER_PLACED"
	TrackingInTransit   TrackingEventType = "IN_TRANSIT"
	TrackingOutForDeliv TrackingEventType = "OUT_FOR_DELIVERY"
	TrackingDelivered   TrackingEventType = "DELIVERED"
)

// SkillLevel grades a professional skill.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "BEGINNER"
	SkillIntermediate SkillLevel = "INTERMEDIATE"
	SkillAdvanced     SkillLevel = "ADVANCED"
	SkillExpert       SkillLevel = "EXPERT"
)

// LanguageProficiency grades a spoken language.
type LanguageProficiency string

const (
	ProficiencyBasic        LanguageProficiency = "BASIC"
	ProficiencyConversional LanguageProficiency = "CONVERSATIONAL"
	ProficiencyFluent       LanguageProficiency = "FLUENT"
	ProficiencyNative       LanguageProficiency = "NATIVE"
)

// SocialPlatform identifies a social network.
type SocialPlatform string

const (
	PlatformTwitter   SocialPlatform = "TWITTER"
	PlatformLinkedin  SocialPlatform = "LINKEDIN"
	PlatformGithub    SocialPlatform = "GITHUB"
	PlatformInstagram SocialPlatform = "INSTAGRAM"
	PlatformFacebook  SocialPlatform = "FACEBOOK"
)

// Skill is one entry in a user's professional skill list.
type Skill struct {
	ID                int64      `json:"id" msgpack:"id" cbor:"1,keyasint"`
	Name              string     `json:"name" msgpack:"name" cbor:"2,keyasint"`
	Level             SkillLevel `json:"level" msgpack:"level" cbor:"3,keyasint"`
	YearsOfExperience int        `json:"yearsOfExperience" msgpack:"yearsOfExperience" cbor:"4,keyasint"`
	Certifications    string     `json:"certifications,omitempty" msgpack:"certifications,omitempty" cbor:"5,keyasint,omitempty"`
}

// Language is one entry in a user's spoken language list.
type Language struct {
	ID          int64               `json:"id" msgpack:"id" cbor:"1,keyasint"`
	Name        string              `json:"name" msgpack:"name" cbor:"2,keyasint"`
	Code        string              `json:"code" msgpack:"code" cbor:"3,keyasint"`
	Proficiency LanguageProficiency `json:"proficiency" msgpack:"proficiency" cbor:"4,keyasint"`
	IsNative    bool                `json:"isNative" msgpack:"isNative" cbor:"5,keyasint"`
}

// Education is one entry in a user's education history.
type Education struct {
	ID           int64  `json:"id" msgpack:"id" cbor:"1,keyasint"`
	Institution  string `json:"institution" msgpack:"institution" cbor:"2,keyasint"`
	Degree       string `json:"degree" msgpack:"degree" cbor:"3,keyasint"`
	FieldOfStudy string `json:"fieldOfStudy" msgpack:"fieldOfStudy" cbor:"4,keyasint"`
	StartDate    int64  `json:"startDate" msgpack:"startDate" cbor:"5,keyasint"`
	EndDate      int64  `json:"endDate" msgpack:"endDate" cbor:"6,keyasint"`
	GPA          string `json:"gpa" msgpack:"gpa" cbor:"7,keyasint"`
	Honors       string `json:"honors,omitempty" msgpack:"honors,omitempty" cbor:"8,keyasint,omitempty"`
}

// UserProfile holds the descriptive portion of a user.
type UserProfile struct {
	Bio         string      `json:"bio" msgpack:"bio" cbor:"1,keyasint"`
	AvatarURL   string      `json:"avatarUrl" msgpack:"avatarUrl" cbor:"2,keyasint"`
	DateOfBirth int64       `json:"dateOfBirth" msgpack:"dateOfBirth" cbor:"3,keyasint"`
	Gender      string      `json:"gender" msgpack:"gender" cbor:"4,keyasint"`
	PhoneNumber string      `json:"phoneNumber" msgpack:"phoneNumber" cbor:"5,keyasint"`
	Nationality string      `json:"nationality" msgpack:"nationality" cbor:"6,keyasint"`
	Occupation  string      `json:"occupation" msgpack:"occupation" cbor:"7,keyasint"`
	Company     string      `json:"company" msgpack:"company" cbor:"8,keyasint"`
	Interests   []string    `json:"interests" msgpack:"interests" cbor:"9,keyasint"`
	Skills      []Skill     `json:"skills" msgpack:"skills" cbor:"10,keyasint"`
	Education   []Education `json:"education" msgpack:"education" cbor:"11,keyasint"`
	Languages   []Language  `json:"languages" msgpack:"languages" cbor:"12,keyasint"`
}

// Address is a postal address with decimal-string coordinates.
type Address struct {
	ID         int64       `json:"id" msgpack:"id" cbor:"1,keyasint"`
	Type       AddressType `json:"type" msgpack:"type" cbor:"2,keyasint"`
	Street1    string      `json:"street1" msgpack:"street1" cbor:"3,keyasint"`
	Street2    string      `json:"street2,omitempty" msgpack:"street2,omitempty" cbor:"4,keyasint,omitempty"`
	City       string      `json:"city" msgpack:"city" cbor:"5,keyasint"`
	State      string      `json:"state" msgpack:"state" cbor:"6,keyasint"`
	PostalCode string      `json:"postalCode" msgpack:"postalCode" cbor:"7,keyasint"`
	Country    string      `json:"country" msgpack:"country" cbor:"8,keyasint"`
	Latitude   string      `json:"latitude" msgpack:"latitude" cbor:"9,keyasint"`
	Longitude  string      `json:"longitude" msgpack:"longitude" cbor:"10,keyasint"`
	IsDefault  bool        `json:"isDefault" msgpack:"isDefault" cbor:"11,keyasint"`
}

// OrderItem is one line item of an order. Prices are decimal strings.
type OrderItem struct {
	ID          int64             `json:"id" msgpack:"id" cbor:"1,keyasint"`
	ProductID   int64             `json:"productId" msgpack:"productId" cbor:"2,keyasint"`
	ProductName string            `json:"productName" msgpack:"productName" cbor:"3,keyasint"`
	ProductSKU  string            `json:"productSku" msgpack:"productSku" cbor:"4,keyasint"`
	Quantity    int               `json:"quantity" msgpack:"quantity" cbor:"5,keyasint"`
	UnitPrice   string            `json:"unitPrice" msgpack:"unitPrice" cbor:"6,keyasint"`
	TotalPrice  string            `json:"totalPrice" msgpack:"totalPrice" cbor:"7,keyasint"`
	Discount    string            `json:"discount" msgpack:"discount" cbor:"8,keyasint"`
	Attributes  map[string]string `json:"attributes,omitempty" msgpack:"attributes,omitempty" cbor:"9,keyasint,omitempty"`
}

// Payment records how an order was settled. Amounts are decimal strings.
type Payment struct {
	ID              int64         `json:"id" msgpack:"id" cbor:"1,keyasint"`
	Method          PaymentMethod `json:"method" msgpack:"method" cbor:"2,keyasint"`
	Status          PaymentStatus `json:"status" msgpack:"status" cbor:"3,keyasint"`
	Amount          string        `json:"amount" msgpack:"amount" cbor:"4,keyasint"`
	Currency        string        `json:"currency" msgpack:"currency" cbor:"5,keyasint"`
	TransactionID   string        `json:"transactionId" msgpack:"transactionId" cbor:"6,keyasint"`
	CardLastFour    string        `json:"cardLastFour,omitempty" msgpack:"cardLastFour,omitempty" cbor:"7,keyasint,omitempty"`
	CardBrand       string        `json:"cardBrand,omitempty" msgpack:"cardBrand,omitempty" cbor:"8,keyasint,omitempty"`
	ProcessedAt     int64         `json:"processedAt" msgpack:"processedAt" cbor:"9,keyasint"`
	GatewayResponse string        `json:"gatewayResponse,omitempty" msgpack:"gatewayResponse,omitempty" cbor:"10,keyasint,omitempty"`
}

// TrackingEvent is one scan event in an order's shipment history.
type TrackingEvent struct {
	ID             int64             `json:"id" msgpack:"id" cbor:"1,keyasint"`
	Status         string            `json:"status" msgpack:"status" cbor:"2,keyasint"`
	Description    string            `json:"description" msgpack:"description" cbor:"3,keyasint"`
	Location       string            `json:"location" msgpack:"location" cbor:"4,keyasint"`
	Timestamp      int64             `json:"timestamp" msgpack:"timestamp" cbor:"5,keyasint"`
	Carrier        string            `json:"carrier" msgpack:"carrier" cbor:"6,keyasint"`
	TrackingNumber string            `json:"trackingNumber" msgpack:"trackingNumber" cbor:"7,keyasint"`
	EventType      TrackingEventType `json:"eventType" msgpack:"eventType" cbor:"8,keyasint"`
}

// Order aggregates items, payment, addresses and tracking for one purchase.
type Order struct {
	ID              int64             `json:"id" msgpack:"id" cbor:"1,keyasint"`
	OrderNumber     string            `json:"orderNumber" msgpack:"orderNumber" cbor:"2,keyasint"`
	Status          OrderStatus       `json:"status" msgpack:"status" cbor:"3,keyasint"`
	Items           []OrderItem       `json:"items" msgpack:"items" cbor:"4,keyasint"`
	TotalAmount     string            `json:"totalAmount" msgpack:"totalAmount" cbor:"5,keyasint"`
	Subtotal        string            `json:"subtotal" msgpack:"subtotal" cbor:"6,keyasint"`
	TaxAmount       string            `json:"taxAmount" msgpack:"taxAmount" cbor:"7,keyasint"`
	ShippingAmount  string            `json:"shippingAmount" msgpack:"shippingAmount" cbor:"8,keyasint"`
	DiscountAmount  string            `json:"discountAmount" msgpack:"discountAmount" cbor:"9,keyasint"`
	Currency        string            `json:"currency" msgpack:"currency" cbor:"10,keyasint"`
	ShippingAddress *Address          `json:"shippingAddress,omitempty" msgpack:"shippingAddress,omitempty" cbor:"11,keyasint,omitempty"`
	BillingAddress  *Address          `json:"billingAddress,omitempty" msgpack:"billingAddress,omitempty" cbor:"12,keyasint,omitempty"`
	Payment         *Payment          `json:"payment,omitempty" msgpack:"payment,omitempty" cbor:"13,keyasint,omitempty"`
	Tracking        []TrackingEvent   `json:"tracking" msgpack:"tracking" cbor:"14,keyasint"`
	OrderDate       int64             `json:"orderDate" msgpack:"orderDate" cbor:"15,keyasint"`
	ShippedDate     int64             `json:"shippedDate,omitempty" msgpack:"shippedDate,omitempty" cbor:"16,keyasint,omitempty"`
	DeliveredDate   int64             `json:"deliveredDate,omitempty" msgpack:"deliveredDate,omitempty" cbor:"17,keyasint,omitempty"`
	Notes           string            `json:"notes,omitempty" msgpack:"notes,omitempty" cbor:"18,keyasint,omitempty"`
	CustomFields    map[string]string `json:"customFields,omitempty" msgpack:"customFields,omitempty" cbor:"19,keyasint,omitempty"`
}

// SocialConnection links a user to an external social account.
type SocialConnection struct {
	ID             int64             `json:"id" msgpack:"id" cbor:"1,keyasint"`
	Platform       SocialPlatform    `json:"platform" msgpack:"platform" cbor:"2,keyasint"`
	Username       string            `json:"username" msgpack:"username" cbor:"3,keyasint"`
	ProfileURL     string            `json:"profileUrl" msgpack:"profileUrl" cbor:"4,keyasint"`
	IsVerified     bool              `json:"isVerified" msgpack:"isVerified" cbor:"5,keyasint"`
	FollowerCount  int64             `json:"followerCount" msgpack:"followerCount" cbor:"6,keyasint"`
	ConnectedAt    int64             `json:"connectedAt" msgpack:"connectedAt" cbor:"7,keyasint"`
	LastSyncAt     int64             `json:"lastSyncAt" msgpack:"lastSyncAt" cbor:"8,keyasint"`
	AdditionalData map[string]string `json:"additionalData,omitempty" msgpack:"additionalData,omitempty" cbor:"9,keyasint,omitempty"`
}

// User is the top-level entity of the benchmark workload.
type User struct {
	ID                int64              `json:"id" msgpack:"id" cbor:"1,keyasint"`
	Username          string             `json:"username" msgpack:"username" cbor:"2,keyasint"`
	Email             string             `json:"email" msgpack:"email" cbor:"3,keyasint"`
	FirstName         string             `json:"firstName" msgpack:"firstName" cbor:"4,keyasint"`
	LastName          string             `json:"lastName" msgpack:"lastName" cbor:"5,keyasint"`
	Profile           UserProfile        `json:"profile" msgpack:"profile" cbor:"6,keyasint"`
	Addresses         []Address          `json:"addresses" msgpack:"addresses" cbor:"7,keyasint"`
	Orders            []Order            `json:"orders" msgpack:"orders" cbor:"8,keyasint"`
	Preferences       map[string]string  `json:"preferences" msgpack:"preferences" cbor:"9,keyasint"`
	Metadata          map[string]string  `json:"metadata" msgpack:"metadata" cbor:"10,keyasint"`
	Tags              []string           `json:"tags" msgpack:"tags" cbor:"11,keyasint"`
	CreatedAt         int64              `json:"createdAt" msgpack:"createdAt" cbor:"12,keyasint"`
	LastLoginAt       int64              `json:"lastLoginAt" msgpack:"lastLoginAt" cbor:"13,keyasint"`
	IsActive          bool               `json:"isActive" msgpack:"isActive" cbor:"14,keyasint"`
	LoyaltyPoints     string             `json:"loyaltyPoints" msgpack:"loyaltyPoints" cbor:"15,keyasint"`
	SocialConnections []SocialConnection `json:"socialConnections" msgpack:"socialConnections" cbor:"16,keyasint"`
}

// Dataset is the aggregate handed to backend adapters. It is created per
// benchmark run and never persisted.
type Dataset struct {
	Users []User `json:"users" msgpack:"users" cbor:"1,keyasint"`
}

// ObjectCount returns the number of top-level entities. Roundtrip checks
// compare this count between input and deserialized datasets.
func (d *Dataset) ObjectCount() int {
	if d == nil {
		return 0
	}
	return len(d.Users)
}

// Shape describes the collection sizes of a dataset at every nesting level.
// Two datasets generated from the same (tier, seed) must have equal shapes.
type Shape struct {
	Users             int
	Addresses         int
	Orders            int
	OrderItems        int
	TrackingEvents    int
	Skills            int
	Education         int
	Languages         int
	SocialConnections int
}

// ShapeOf computes the aggregate shape of a dataset.
func ShapeOf(d *Dataset) Shape {
	var s Shape
	if d == nil {
		return s
	}
	s.Users = len(d.Users)
	for _, u := range d.Users {
		s.Addresses += len(u.Addresses)
		s.Orders += len(u.Orders)
		s.Skills += len(u.Profile.Skills)
		s.Education += len(u.Profile.Education)
		s.Languages += len(u.Profile.Languages)
		s.SocialConnections += len(u.SocialConnections)
		for _, o := range u.Orders {
			s.OrderItems += len(o.Items)
			s.TrackingEvents += len(o.Tracking)
		}
	}
	return s
}

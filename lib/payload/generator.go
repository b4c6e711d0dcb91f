package payload

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "payload")

// DefaultSeed is used when the caller supplies no seed. A fixed seed (never
// system time) keeps dataset identity stable across backend comparisons.
const DefaultSeed int64 = 42

// Word pools for pseudo-random field values. Values vary with the seed but
// collection sizes never do.
var (
	firstNames = []string{
		"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael",
		"Linda", "William", "Elizabeth", "David", "Barbara", "Richard",
		"Susan", "Joseph", "Jessica", "Thomas", "Sarah", "Emma", "Liam",
		"Olivia", "Noah", "Ava", "Ethan", "Isabella", "Lucas", "Sophia", "Mason",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
		"Davis", "Rodriguez", "Martinez", "Wilson", "Anderson", "Thomas",
		"Taylor", "Moore", "Jackson", "Martin", "Lee", "Thompson", "White",
	}
	cities = []string{
		"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
		"Philadelphia", "San Antonio", "San Diego", "Dallas", "Austin",
		"Seattle", "Denver", "Boston", "Nashville", "Detroit",
	}
	companies = []string{
		"Apple Inc.", "Microsoft Corporation", "Google LLC", "Amazon.com Inc.",
		"Tesla Inc.", "NVIDIA Corporation", "Visa Inc.", "Mastercard Inc.",
		"The Home Depot Inc.", "Pfizer Inc.",
	}
	skillNames = []string{
		"Java", "Python", "JavaScript", "C++", "Go", "Rust", "Kotlin",
		"Swift", "TypeScript", "React", "Spring Boot", "Django", "Node.js",
		"Docker", "Kubernetes", "AWS", "PostgreSQL", "MongoDB", "Redis",
		"Elasticsearch", "Apache Kafka", "RabbitMQ",
	}
	interests = []string{
		"photography", "hiking", "cooking", "chess", "cycling", "reading",
		"travel", "music", "gardening", "astronomy",
	}
	carriers   = []string{"UPS", "FedEx", "DHL", "USPS"}
	currencies = []string{"USD", "EUR", "GBP", "JPY"}
	languages  = []struct{ name, code string }{
		{"English", "en"}, {"Spanish", "es"}, {"German", "de"},
		{"French", "fr"}, {"Mandarin", "zh"}, {"Portuguese", "pt"},
	}
	institutions = []string{
		"MIT", "Stanford University", "TU Munich", "ETH Zurich",
		"University of Tokyo", "Oxford University",
	}
	loremWords = []string{
		"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing",
		"elit", "sed", "do", "eiusmod", "tempor", "incididunt", "ut", "labore",
		"et", "dolore", "magna", "aliqua",
	}
)

// Enum pools, indexed deterministically.
var (
	addressTypes   = []AddressType{AddressHome, AddressWork, AddressBilling, AddressShipping}
	orderStatuses  = []OrderStatus{OrderPending, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled}
	payMethods     = []PaymentMethod{PaymentCreditCard, PaymentDebitCard, PaymentPaypal, PaymentBankTransfer}
	payStatuses    = []PaymentStatus{PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded}
	trackingTypes  = []TrackingEventType{TrackingOrderPlaced, TrackingInTransit, TrackingOutForDeliv, TrackingDelivered}
	skillLevels    = []SkillLevel{SkillBeginner, SkillIntermediate, SkillAdvanced, SkillExpert}
	proficiencies  = []LanguageProficiency{ProficiencyBasic, ProficiencyConversional, ProficiencyFluent, ProficiencyNative}
	platforms      = []SocialPlatform{PlatformTwitter, PlatformLinkedin, PlatformGithub, PlatformInstagram, PlatformFacebook}
)

// Timestamps are anchored to a fixed epoch so generated values do not depend
// on wall-clock time.
const baseEpochMillis int64 = 1700000000000 // 2023-11-14T22:13:20Z

// Generate deterministically builds a dataset for the given tier and seed.
// It is a pure function: the same (tier, seed) pair yields an identical
// dataset, shape and values. Unknown tiers panic.
func Generate(tier ComplexityTier, seed int64) *Dataset {
	spec := specFor(tier)
	rng := rand.New(rand.NewSource(seed))

	users := make([]User, 0, spec.Users)
	for i := 0; i < spec.Users; i++ {
		users = append(users, generateUser(int64(i)+1, rng, spec))
	}

	log.WithFields(logrus.Fields{
		"tier":  tier,
		"seed":  seed,
		"users": len(users),
	}).Debug("generated dataset")

	return &Dataset{Users: users}
}

// GenerateDefault builds a dataset with the fixed default seed.
func GenerateDefault(tier ComplexityTier) *Dataset {
	return Generate(tier, DefaultSeed)
}

func generateUser(id int64, rng *rand.Rand, spec tierSpec) User {
	first := pick(rng, firstNames)
	last := pick(rng, lastNames)
	username := fmt.Sprintf("%s.%s.%d", strings.ToLower(first), strings.ToLower(last), id)

	addresses := make([]Address, 0, spec.Addresses)
	for i := 0; i < spec.Addresses; i++ {
		addresses = append(addresses, generateAddress(int64(i)+1, rng, spec, i == 0))
	}

	orders := make([]Order, 0, spec.Orders)
	for i := 0; i < spec.Orders; i++ {
		orders = append(orders, generateOrder(int64(i)+1, rng, spec))
	}

	social := make([]SocialConnection, 0, spec.Social)
	for i := 0; i < spec.Social; i++ {
		social = append(social, generateSocialConnection(int64(i)+1, rng, spec, username))
	}

	tags := make([]string, 0, spec.Tags)
	for i := 0; i < spec.Tags; i++ {
		tags = append(tags, fmt.Sprintf("tag-%s-%d", pick(rng, loremWords), i))
	}

	created := baseEpochMillis - rng.Int63n(365*24*3600*1000)

	return User{
		ID:            id,
		Username:      username,
		Email:         fmt.Sprintf("%s@example.com", username),
		FirstName:     first,
		LastName:      last,
		Profile:       generateProfile(rng, spec),
		Addresses:     addresses,
		Orders:        orders,
		Preferences:   generateStringMap(rng, "pref", 3),
		Metadata:      generateStringMap(rng, "meta", 3),
		Tags:          tags,
		CreatedAt:     created,
		LastLoginAt:   created + rng.Int63n(30*24*3600*1000),
		IsActive:      rng.Intn(10) > 0,
		LoyaltyPoints: decimal2(rng.Int63n(100000)),
		SocialConnections: social,
	}
}

func generateProfile(rng *rand.Rand, spec tierSpec) UserProfile {
	skills := make([]Skill, 0, spec.Skills)
	for i := 0; i < spec.Skills; i++ {
		skills = append(skills, Skill{
			ID:                int64(i) + 1,
			Name:              pickAt(skillNames, i),
			Level:             pick(rng, skillLevels),
			YearsOfExperience: 1 + rng.Intn(20),
			Certifications:    optional(spec, fmt.Sprintf("%s Professional Certificate", pickAt(skillNames, i))),
		})
	}

	education := make([]Education, 0, spec.Education)
	for i := 0; i < spec.Education; i++ {
		start := baseEpochMillis - int64(8+i)*365*24*3600*1000
		education = append(education, Education{
			ID:           int64(i) + 1,
			Institution:  pick(rng, institutions),
			Degree:       pickAt([]string{"BSc", "MSc", "PhD", "MBA"}, i),
			FieldOfStudy: "Computer Science",
			StartDate:    start,
			EndDate:      start + 4*365*24*3600*1000,
			GPA:          decimal2(250 + rng.Int63n(151)),
			Honors:       optional(spec, "magna cum laude"),
		})
	}

	langs := make([]Language, 0, spec.Languages)
	for i := 0; i < spec.Languages; i++ {
		l := languages[i%len(languages)]
		langs = append(langs, Language{
			ID:          int64(i) + 1,
			Name:        l.name,
			Code:        l.code,
			Proficiency: pick(rng, proficiencies),
			IsNative:    i == 0,
		})
	}

	ints := make([]string, 0, spec.Interests)
	for i := 0; i < spec.Interests; i++ {
		ints = append(ints, pickAt(interests, i))
	}

	return UserProfile{
		Bio:         sentence(rng, 12),
		AvatarURL:   fmt.Sprintf("https://cdn.example.com/avatars/%d.png", rng.Intn(100000)),
		DateOfBirth: baseEpochMillis - (20+rng.Int63n(30))*365*24*3600*1000,
		Gender:      pick(rng, []string{"female", "male", "other"}),
		PhoneNumber: fmt.Sprintf("+1-555-%04d", rng.Intn(10000)),
		Nationality: pick(rng, []string{"US", "DE", "FR", "JP", "BR", "GB"}),
		Occupation:  "Software Engineer",
		Company:     pick(rng, companies),
		Interests:   ints,
		Skills:      skills,
		Education:   education,
		Languages:   langs,
	}
}

func generateAddress(id int64, rng *rand.Rand, spec tierSpec, isDefault bool) Address {
	return Address{
		ID:         id,
		Type:       addressTypes[int(id-1)%len(addressTypes)],
		Street1:    fmt.Sprintf("%d %s Street", 1+rng.Intn(9999), pick(rng, lastNames)),
		Street2:    optional(spec, fmt.Sprintf("Apt %d", 1+rng.Intn(100))),
		City:       pick(rng, cities),
		State:      pick(rng, []string{"NY", "CA", "IL", "TX", "WA", "MA"}),
		PostalCode: fmt.Sprintf("%05d", rng.Intn(100000)),
		Country:    "US",
		Latitude:   decimal6(rng.Int63n(180000000) - 90000000),
		Longitude:  decimal6(rng.Int63n(360000000) - 180000000),
		IsDefault:  isDefault,
	}
}

func generateOrder(id int64, rng *rand.Rand, spec tierSpec) Order {
	items := make([]OrderItem, 0, spec.ItemsPerOrder)
	var subtotalCents int64
	for i := 0; i < spec.ItemsPerOrder; i++ {
		unitCents := 100 + rng.Int63n(100000)
		qty := 1 + rng.Intn(5)
		totalCents := unitCents * int64(qty)
		subtotalCents += totalCents
		items = append(items, OrderItem{
			ID:          int64(i) + 1,
			ProductID:   rng.Int63n(1000000),
			ProductName: fmt.Sprintf("%s %s", pick(rng, loremWords), pick(rng, loremWords)),
			ProductSKU:  fmt.Sprintf("SKU-%08d", rng.Intn(100000000)),
			Quantity:    qty,
			UnitPrice:   decimal2(unitCents),
			TotalPrice:  decimal2(totalCents),
			Discount:    decimal2(0),
			Attributes:  optionalMap(spec, rng, "attr", 2),
		})
	}

	taxCents := subtotalCents / 10
	shippingCents := int64(999)
	totalCents := subtotalCents + taxCents + shippingCents

	orderDate := baseEpochMillis - rng.Int63n(90*24*3600*1000)
	shipping := generateAddress(1, rng, spec, true)
	billing := generateAddress(2, rng, spec, false)

	tracking := make([]TrackingEvent, 0, spec.TrackingEvents)
	trackingNumber := fmt.Sprintf("1Z%012d", rng.Int63n(1000000000000))
	for i := 0; i < spec.TrackingEvents; i++ {
		et := trackingTypes[i%len(trackingTypes)]
		tracking = append(tracking, TrackingEvent{
			ID:             int64(i) + 1,
			Status:         string(et),
			Description:    sentence(rng, 6),
			Location:       pick(rng, cities),
			Timestamp:      orderDate + int64(i+1)*24*3600*1000,
			Carrier:        pick(rng, carriers),
			TrackingNumber: trackingNumber,
			EventType:      et,
		})
	}

	currency := pick(rng, currencies)

	return Order{
		ID:             id,
		OrderNumber:    fmt.Sprintf("ORD-%010d", rng.Int63n(10000000000)),
		Status:         orderStatuses[int(id-1)%len(orderStatuses)],
		Items:          items,
		TotalAmount:    decimal2(totalCents),
		Subtotal:       decimal2(subtotalCents),
		TaxAmount:      decimal2(taxCents),
		ShippingAmount: decimal2(shippingCents),
		DiscountAmount: decimal2(0),
		Currency:       currency,
		ShippingAddress: &shipping,
		BillingAddress:  &billing,
		Payment: &Payment{
			ID:              id,
			Method:          pick(rng, payMethods),
			Status:          PaymentCompleted,
			Amount:          decimal2(totalCents),
			Currency:        currency,
			TransactionID:   fmt.Sprintf("txn-%016x", rng.Int63()),
			CardLastFour:    optional(spec, fmt.Sprintf("%04d", rng.Intn(10000))),
			CardBrand:       optional(spec, pick(rng, []string{"VISA", "MASTERCARD", "AMEX"})),
			ProcessedAt:     orderDate + 60000,
			GatewayResponse: optional(spec, "approved"),
		},
		Tracking:      tracking,
		OrderDate:     orderDate,
		ShippedDate:   orderDate + 24*3600*1000,
		DeliveredDate: orderDate + 4*24*3600*1000,
		Notes:         optional(spec, sentence(rng, 8)),
		CustomFields:  optionalMap(spec, rng, "custom", 2),
	}
}

func generateSocialConnection(id int64, rng *rand.Rand, spec tierSpec, username string) SocialConnection {
	platform := platforms[int(id-1)%len(platforms)]
	connected := baseEpochMillis - rng.Int63n(3*365*24*3600*1000)
	return SocialConnection{
		ID:             id,
		Platform:       platform,
		Username:       username,
		ProfileURL:     fmt.Sprintf("https://%s.example.com/%s", strings.ToLower(string(platform)), username),
		IsVerified:     rng.Intn(4) == 0,
		FollowerCount:  rng.Int63n(100000),
		ConnectedAt:    connected,
		LastSyncAt:     connected + rng.Int63n(24*3600*1000),
		AdditionalData: optionalMap(spec, rng, "extra", 2),
	}
}

// ----------------------------------------------------------------------------
// Helpers
// ----------------------------------------------------------------------------

// decimal2 formats cents as a fixed two-decimal string, e.g. 12345 -> "123.45".
func decimal2(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// decimal6 formats micro-units as a fixed six-decimal string (coordinates).
func decimal6(micro int64) string {
	sign := ""
	if micro < 0 {
		sign = "-"
		micro = -micro
	}
	return fmt.Sprintf("%s%d.%06d", sign, micro/1000000, micro%1000000)
}

func pick[T any](rng *rand.Rand, values []T) T {
	return values[rng.Intn(len(values))]
}

// pickAt indexes a pool deterministically by position, wrapping around, so
// the i-th element of a collection is stable independent of the rng stream.
func pickAt[T any](values []T, i int) T {
	return values[i%len(values)]
}

func sentence(rng *rand.Rand, words int) string {
	out := make([]byte, 0, words*8)
	for i := 0; i < words; i++ {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, pick(rng, loremWords)...)
	}
	return string(out)
}

func generateStringMap(rng *rand.Rand, prefix string, n int) map[string]string {
	m := make(map[string]string, n)
	for i := 0; i < n; i++ {
		m[fmt.Sprintf("%s_%d", prefix, i)] = pick(rng, loremWords)
	}
	return m
}

// optional returns v only if the tier populates optional fields. The rng is
// deliberately not consulted so field presence never varies per element.
func optional(spec tierSpec, v string) string {
	if !spec.OptionalFields {
		return ""
	}
	return v
}

func optionalMap(spec tierSpec, rng *rand.Rand, prefix string, n int) map[string]string {
	if !spec.OptionalFields {
		return nil
	}
	return generateStringMap(rng, prefix, n)
}

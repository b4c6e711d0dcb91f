package serializer

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/techishthoughts/serbench/lib/bench"
	"github.com/techishthoughts/serbench/lib/payload"
)

// NewBinaryAdapter creates a backend using a custom length-prefixed binary
// format optimized for this dataset. It declares no compression support:
// the format is already compact, so the harness exercises the "NONE"
// passthrough path with it.
func NewBinaryAdapter() bench.Adapter {
	return newAdapter("binary", "Binary", binaryCodec{}, false, false)
}

// binaryVersion guards against decoding data from an incompatible layout.
const binaryVersion byte = 1

// binaryCodec implements the ICodec interface using a custom binary format.
// All integers are big-endian, strings and collections are length-prefixed,
// optional sub-objects carry a one-byte presence flag, map keys are sorted
// for stable output.
type binaryCodec struct{}

func (binaryCodec) Marshal(ds *payload.Dataset) ([]byte, error) {
	w := &bwriter{}
	w.u8(binaryVersion)
	w.u32(uint32(len(ds.Users)))
	for i := range ds.Users {
		writeUser(w, &ds.Users[i])
	}
	return w.buf.Bytes(), nil
}

func (binaryCodec) Unmarshal(data []byte) (*payload.Dataset, error) {
	r := &breader{data: data}
	if v := r.u8(); r.err == nil && v != binaryVersion {
		return nil, fmt.Errorf("serializer: unsupported binary version %d", v)
	}
	n := r.u32()
	if r.err != nil {
		return nil, r.err
	}
	ds := &payload.Dataset{Users: make([]payload.User, 0, n)}
	for i := uint32(0); i < n; i++ {
		ds.Users = append(ds.Users, readUser(r))
		if r.err != nil {
			return nil, r.err
		}
	}
	return ds, nil
}

// --------------------------------------------------------------------------
// Per-type encoders
// --------------------------------------------------------------------------

func writeUser(w *bwriter, u *payload.User) {
	w.i64(u.ID)
	w.str(u.Username)
	w.str(u.Email)
	w.str(u.FirstName)
	w.str(u.LastName)
	writeProfile(w, &u.Profile)
	w.u32(uint32(len(u.Addresses)))
	for i := range u.Addresses {
		writeAddress(w, &u.Addresses[i])
	}
	w.u32(uint32(len(u.Orders)))
	for i := range u.Orders {
		writeOrder(w, &u.Orders[i])
	}
	w.strMap(u.Preferences)
	w.strMap(u.Metadata)
	w.strSlice(u.Tags)
	w.i64(u.CreatedAt)
	w.i64(u.LastLoginAt)
	w.bool(u.IsActive)
	w.str(u.LoyaltyPoints)
	w.u32(uint32(len(u.SocialConnections)))
	for i := range u.SocialConnections {
		writeSocial(w, &u.SocialConnections[i])
	}
}

func writeProfile(w *bwriter, p *payload.UserProfile) {
	w.str(p.Bio)
	w.str(p.AvatarURL)
	w.i64(p.DateOfBirth)
	w.str(p.Gender)
	w.str(p.PhoneNumber)
	w.str(p.Nationality)
	w.str(p.Occupation)
	w.str(p.Company)
	w.strSlice(p.Interests)
	w.u32(uint32(len(p.Skills)))
	for _, s := range p.Skills {
		w.i64(s.ID)
		w.str(s.Name)
		w.str(string(s.Level))
		w.u32(uint32(s.YearsOfExperience))
		w.str(s.Certifications)
	}
	w.u32(uint32(len(p.Education)))
	for _, e := range p.Education {
		w.i64(e.ID)
		w.str(e.Institution)
		w.str(e.Degree)
		w.str(e.FieldOfStudy)
		w.i64(e.StartDate)
		w.i64(e.EndDate)
		w.str(e.GPA)
		w.str(e.Honors)
	}
	w.u32(uint32(len(p.Languages)))
	for _, l := range p.Languages {
		w.i64(l.ID)
		w.str(l.Name)
		w.str(l.Code)
		w.str(string(l.Proficiency))
		w.bool(l.IsNative)
	}
}

func writeAddress(w *bwriter, a *payload.Address) {
	w.i64(a.ID)
	w.str(string(a.Type))
	w.str(a.Street1)
	w.str(a.Street2)
	w.str(a.City)
	w.str(a.State)
	w.str(a.PostalCode)
	w.str(a.Country)
	w.str(a.Latitude)
	w.str(a.Longitude)
	w.bool(a.IsDefault)
}

func writeOrder(w *bwriter, o *payload.Order) {
	w.i64(o.ID)
	w.str(o.OrderNumber)
	w.str(string(o.Status))
	w.u32(uint32(len(o.Items)))
	for _, it := range o.Items {
		w.i64(it.ID)
		w.i64(it.ProductID)
		w.str(it.ProductName)
		w.str(it.ProductSKU)
		w.u32(uint32(it.Quantity))
		w.str(it.UnitPrice)
		w.str(it.TotalPrice)
		w.str(it.Discount)
		w.strMap(it.Attributes)
	}
	w.str(o.TotalAmount)
	w.str(o.Subtotal)
	w.str(o.TaxAmount)
	w.str(o.ShippingAmount)
	w.str(o.DiscountAmount)
	w.str(o.Currency)
	if o.ShippingAddress != nil {
		w.bool(true)
		writeAddress(w, o.ShippingAddress)
	} else {
		w.bool(false)
	}
	if o.BillingAddress != nil {
		w.bool(true)
		writeAddress(w, o.BillingAddress)
	} else {
		w.bool(false)
	}
	if o.Payment != nil {
		w.bool(true)
		writePayment(w, o.Payment)
	} else {
		w.bool(false)
	}
	w.u32(uint32(len(o.Tracking)))
	for _, t := range o.Tracking {
		w.i64(t.ID)
		w.str(t.Status)
		w.str(t.Description)
		w.str(t.Location)
		w.i64(t.Timestamp)
		w.str(t.Carrier)
		w.str(t.TrackingNumber)
		w.str(string(t.EventType))
	}
	w.i64(o.OrderDate)
	w.i64(o.ShippedDate)
	w.i64(o.DeliveredDate)
	w.str(o.Notes)
	w.strMap(o.CustomFields)
}

func writePayment(w *bwriter, p *payload.Payment) {
	w.i64(p.ID)
	w.str(string(p.Method))
	w.str(string(p.Status))
	w.str(p.Amount)
	w.str(p.Currency)
	w.str(p.TransactionID)
	w.str(p.CardLastFour)
	w.str(p.CardBrand)
	w.i64(p.ProcessedAt)
	w.str(p.GatewayResponse)
}

func writeSocial(w *bwriter, s *payload.SocialConnection) {
	w.i64(s.ID)
	w.str(string(s.Platform))
	w.str(s.Username)
	w.str(s.ProfileURL)
	w.bool(s.IsVerified)
	w.i64(s.FollowerCount)
	w.i64(s.ConnectedAt)
	w.i64(s.LastSyncAt)
	w.strMap(s.AdditionalData)
}

// --------------------------------------------------------------------------
// Per-type decoders
// --------------------------------------------------------------------------

func readUser(r *breader) payload.User {
	var u payload.User
	u.ID = r.i64()
	u.Username = r.str()
	u.Email = r.str()
	u.FirstName = r.str()
	u.LastName = r.str()
	u.Profile = readProfile(r)
	for i, n := uint32(0), r.u32(); i < n && r.err == nil; i++ {
		u.Addresses = append(u.Addresses, readAddress(r))
	}
	for i, n := uint32(0), r.u32(); i < n && r.err == nil; i++ {
		u.Orders = append(u.Orders, readOrder(r))
	}
	u.Preferences = r.strMap()
	u.Metadata = r.strMap()
	u.Tags = r.strSlice()
	u.CreatedAt = r.i64()
	u.LastLoginAt = r.i64()
	u.IsActive = r.bool()
	u.LoyaltyPoints = r.str()
	for i, n := uint32(0), r.u32(); i < n && r.err == nil; i++ {
		u.SocialConnections = append(u.SocialConnections, readSocial(r))
	}
	return u
}

func readProfile(r *breader) payload.UserProfile {
	var p payload.UserProfile
	p.Bio = r.str()
	p.AvatarURL = r.str()
	p.DateOfBirth = r.i64()
	p.Gender = r.str()
	p.PhoneNumber = r.str()
	p.Nationality = r.str()
	p.Occupation = r.str()
	p.Company = r.str()
	p.Interests = r.strSlice()
	for i, n := uint32(0), r.u32(); i < n && r.err == nil; i++ {
		p.Skills = append(p.Skills, payload.Skill{
			ID:                r.i64(),
			Name:              r.str(),
			Level:             payload.SkillLevel(r.str()),
			YearsOfExperience: int(r.u32()),
			Certifications:    r.str(),
		})
	}
	for i, n := uint32(0), r.u32(); i < n && r.err == nil; i++ {
		p.Education = append(p.Education, payload.Education{
			ID:           r.i64(),
			Institution:  r.str(),
			Degree:       r.str(),
			FieldOfStudy: r.str(),
			StartDate:    r.i64(),
			EndDate:      r.i64(),
			GPA:          r.str(),
			Honors:       r.str(),
		})
	}
	for i, n := uint32(0), r.u32(); i < n && r.err == nil; i++ {
		p.Languages = append(p.Languages, payload.Language{
			ID:          r.i64(),
			Name:        r.str(),
			Code:        r.str(),
			Proficiency: payload.LanguageProficiency(r.str()),
			IsNative:    r.bool(),
		})
	}
	return p
}

func readAddress(r *breader) payload.Address {
	return payload.Address{
		ID:         r.i64(),
		Type:       payload.AddressType(r.str()),
		Street1:    r.str(),
		Street2:    r.str(),
		City:       r.str(),
		State:      r.str(),
		PostalCode: r.str(),
		Country:    r.str(),
		Latitude:   r.str(),
		Longitude:  r.str(),
		IsDefault:  r.bool(),
	}
}

func readOrder(r *breader) payload.Order {
	var o payload.Order
	o.ID = r.i64()
	o.OrderNumber = r.str()
	o.Status = payload.OrderStatus(r.str())
	for i, n := uint32(0), r.u32(); i < n && r.err == nil; i++ {
		o.Items = append(o.Items, payload.OrderItem{
			ID:          r.i64(),
			ProductID:   r.i64(),
			ProductName: r.str(),
			ProductSKU:  r.str(),
			Quantity:    int(r.u32()),
			UnitPrice:   r.str(),
			TotalPrice:  r.str(),
			Discount:    r.str(),
			Attributes:  r.strMap(),
		})
	}
	o.TotalAmount = r.str()
	o.Subtotal = r.str()
	o.TaxAmount = r.str()
	o.ShippingAmount = r.str()
	o.DiscountAmount = r.str()
	o.Currency = r.str()
	if r.bool() {
		a := readAddress(r)
		o.ShippingAddress = &a
	}
	if r.bool() {
		a := readAddress(r)
		o.BillingAddress = &a
	}
	if r.bool() {
		p := readPayment(r)
		o.Payment = &p
	}
	for i, n := uint32(0), r.u32(); i < n && r.err == nil; i++ {
		o.Tracking = append(o.Tracking, payload.TrackingEvent{
			ID:             r.i64(),
			Status:         r.str(),
			Description:    r.str(),
			Location:       r.str(),
			Timestamp:      r.i64(),
			Carrier:        r.str(),
			TrackingNumber: r.str(),
			EventType:      payload.TrackingEventType(r.str()),
		})
	}
	o.OrderDate = r.i64()
	o.ShippedDate = r.i64()
	o.DeliveredDate = r.i64()
	o.Notes = r.str()
	o.CustomFields = r.strMap()
	return o
}

func readPayment(r *breader) payload.Payment {
	return payload.Payment{
		ID:              r.i64(),
		Method:          payload.PaymentMethod(r.str()),
		Status:          payload.PaymentStatus(r.str()),
		Amount:          r.str(),
		Currency:        r.str(),
		TransactionID:   r.str(),
		CardLastFour:    r.str(),
		CardBrand:       r.str(),
		ProcessedAt:     r.i64(),
		GatewayResponse: r.str(),
	}
}

func readSocial(r *breader) payload.SocialConnection {
	return payload.SocialConnection{
		ID:             r.i64(),
		Platform:       payload.SocialPlatform(r.str()),
		Username:       r.str(),
		ProfileURL:     r.str(),
		IsVerified:     r.bool(),
		FollowerCount:  r.i64(),
		ConnectedAt:    r.i64(),
		LastSyncAt:     r.i64(),
		AdditionalData: r.strMap(),
	}
}

// --------------------------------------------------------------------------
// Wire primitives
// --------------------------------------------------------------------------

type bwriter struct {
	buf bytes.Buffer
	tmp [8]byte
}

func (w *bwriter) u8(v byte) { w.buf.WriteByte(v) }

func (w *bwriter) bool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

func (w *bwriter) u32(v uint32) {
	binary.BigEndian.PutUint32(w.tmp[:4], v)
	w.buf.Write(w.tmp[:4])
}

func (w *bwriter) i64(v int64) {
	binary.BigEndian.PutUint64(w.tmp[:8], uint64(v))
	w.buf.Write(w.tmp[:8])
}

func (w *bwriter) str(s string) {
	w.u32(uint32(len(s)))
	w.buf.WriteString(s)
}

func (w *bwriter) strSlice(values []string) {
	w.u32(uint32(len(values)))
	for _, v := range values {
		w.str(v)
	}
}

func (w *bwriter) strMap(m map[string]string) {
	w.u32(uint32(len(m)))
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		w.str(k)
		w.str(m[k])
	}
}

// breader decodes with a sticky error: after the first failure every read
// returns a zero value and the error is checked once per object.
type breader struct {
	data []byte
	pos  int
	err  error
}

func (r *breader) fail() {
	if r.err == nil {
		r.err = fmt.Errorf("serializer: truncated binary data at offset %d", r.pos)
	}
}

func (r *breader) u8() byte {
	if r.err != nil || r.pos+1 > len(r.data) {
		r.fail()
		return 0
	}
	v := r.data[r.pos]
	r.pos++
	return v
}

func (r *breader) bool() bool { return r.u8() == 1 }

func (r *breader) u32() uint32 {
	if r.err != nil || r.pos+4 > len(r.data) {
		r.fail()
		return 0
	}
	v := binary.BigEndian.Uint32(r.data[r.pos : r.pos+4])
	r.pos += 4
	return v
}

func (r *breader) i64() int64 {
	if r.err != nil || r.pos+8 > len(r.data) {
		r.fail()
		return 0
	}
	v := int64(binary.BigEndian.Uint64(r.data[r.pos : r.pos+8]))
	r.pos += 8
	return v
}

func (r *breader) str() string {
	n := int(r.u32())
	if r.err != nil || r.pos+n > len(r.data) {
		r.fail()
		return ""
	}
	v := string(r.data[r.pos : r.pos+n])
	r.pos += n
	return v
}

func (r *breader) strSlice() []string {
	n := r.u32()
	if r.err != nil || n == 0 {
		return nil
	}
	out := make([]string, 0, n)
	for i := uint32(0); i < n && r.err == nil; i++ {
		out = append(out, r.str())
	}
	return out
}

func (r *breader) strMap() map[string]string {
	n := r.u32()
	if r.err != nil || n == 0 {
		return nil
	}
	out := make(map[string]string, n)
	for i := uint32(0); i < n && r.err == nil; i++ {
		k := r.str()
		out[k] = r.str()
	}
	return out
}

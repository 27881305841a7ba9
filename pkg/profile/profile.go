package profile

import (
	"strconv"
	"strings"
)

// Profile is a single person record: identity, demographics and an ordered hobby list.
// The id is fixed at construction; the store keys profiles by it.
type Profile struct {
	id      int
	name    string
	age     int
	city    string
	country string
	hobbies []string
}

// New creates a Profile with an empty hobby list
func New(id int, name string, age int, city, country string) *Profile {
	return &Profile{
		id:      id,
		name:    name,
		age:     age,
		city:    city,
		country: country,
	}
}

func (p *Profile) ID() int         { return p.id }
func (p *Profile) Name() string    { return p.name }
func (p *Profile) Age() int        { return p.age }
func (p *Profile) City() string    { return p.city }
func (p *Profile) Country() string { return p.country }

// Hobbies returns a copy of the hobby list in insertion order
func (p *Profile) Hobbies() []string {
	return append([]string(nil), p.hobbies...)
}

// AddHobby appends a hobby. Empty hobbies are ignored; duplicates are kept.
func (p *Profile) AddHobby(hobby string) {
	if hobby == "" {
		return
	}
	p.hobbies = append(p.hobbies, hobby)
}

// RemoveHobby removes the first exact match of hobby and reports whether one was removed
func (p *Profile) RemoveHobby(hobby string) bool {
	for i, h := range p.hobbies {
		if h == hobby {
			p.hobbies = append(p.hobbies[:i], p.hobbies[i+1:]...)
			return true
		}
	}
	return false
}

// SetName replaces the name. An empty name is rejected.
func (p *Profile) SetName(name string) bool {
	if name == "" {
		return false
	}
	p.name = name
	return true
}

// SetAge replaces the age
func (p *Profile) SetAge(age int) {
	p.age = age
}

// SetCity replaces the city. An empty city is rejected.
func (p *Profile) SetCity(city string) bool {
	if city == "" {
		return false
	}
	p.city = city
	return true
}

// SetCountry replaces the country. An empty country is rejected.
func (p *Profile) SetCountry(country string) bool {
	if country == "" {
		return false
	}
	p.country = country
	return true
}

// String renders the profile as a fixed-order multi-line summary
func (p *Profile) String() string {
	var b strings.Builder
	b.WriteString("Id: " + strconv.Itoa(p.id) + "\n")
	b.WriteString("Name: " + p.name + "\n")
	b.WriteString("Age: " + strconv.Itoa(p.age) + "\n")
	b.WriteString("City: " + p.city + "\n")
	b.WriteString("Country: " + p.country + "\n")
	b.WriteString("Hobbies: " + strings.Join(p.hobbies, ", ") + "\n")
	return b.String()
}

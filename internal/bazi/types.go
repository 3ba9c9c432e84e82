// Package bazi provides the Four Pillars (BaZi) chart: stems, branches,
// elements, the sexagenary cycle and the pillar builder.
package bazi

import "fmt"

// Element is one of the five phases.
type Element int

const (
	Wood Element = iota
	Fire
	Earth
	Metal
	Water
)

// NumElements is the number of elements. Element order is also the
// tie-break order for dominant/weakest selection.
const NumElements = 5

// Elements lists all elements in tie-break order.
var Elements = [NumElements]Element{Wood, Fire, Earth, Metal, Water}

var elementNames = [NumElements]string{"Wood", "Fire", "Earth", "Metal", "Water"}

var elementHanzi = [NumElements]string{"木", "火", "土", "金", "水"}

// Valid reports whether e is one of the five elements.
func (e Element) Valid() bool { return e >= 0 && e < NumElements }

func (e Element) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Element(%d)", int(e))
	}
	return elementNames[e]
}

// Hanzi returns the Chinese character for the element.
func (e Element) Hanzi() string { return elementHanzi[e] }

// MarshalText encodes the element by name.
func (e Element) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

// UnmarshalText decodes an element name.
func (e *Element) UnmarshalText(b []byte) error {
	v, err := ParseElement(string(b))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// ParseElement parses an element name such as "Water".
func ParseElement(s string) (Element, error) {
	for i, name := range elementNames {
		if name == s {
			return Element(i), nil
		}
	}
	return 0, fmt.Errorf("unknown element %q", s)
}

// Polarity is Yang or Yin.
type Polarity int

const (
	Yang Polarity = iota
	Yin
)

func (p Polarity) String() string {
	if p == Yang {
		return "Yang"
	}
	return "Yin"
}

// MarshalText encodes the polarity by name.
func (p Polarity) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// Stem is one of the ten Heavenly Stems.
type Stem int

const (
	StemJia Stem = iota
	StemYi
	StemBing
	StemDing
	StemWu
	StemJi
	StemGeng
	StemXin
	StemRen
	StemGui
)

// NumStems is the number of Heavenly Stems.
const NumStems = 10

var stemNames = [NumStems]string{"Jia", "Yi", "Bing", "Ding", "Wu", "Ji", "Geng", "Xin", "Ren", "Gui"}

var stemHanzi = [NumStems]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

// Valid reports whether s is one of the ten stems.
func (s Stem) Valid() bool { return s >= 0 && s < NumStems }

func (s Stem) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Stem(%d)", int(s))
	}
	return stemNames[s]
}

// Hanzi returns the Chinese character for the stem.
func (s Stem) Hanzi() string { return stemHanzi[s] }

// Element returns the stem's element.
func (s Stem) Element() Element { return stemElements[s] }

// Polarity is Yang for even stems and Yin for odd ones.
func (s Stem) Polarity() Polarity { return Polarity(int(s) % 2) }

// MarshalText encodes the stem by name.
func (s Stem) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Branch is one of the twelve Earthly Branches.
type Branch int

const (
	BranchZi Branch = iota
	BranchChou
	BranchYin
	BranchMao
	BranchChen
	BranchSi
	BranchWu
	BranchWei
	BranchShen
	BranchYou
	BranchXu
	BranchHai
)

// NumBranches is the number of Earthly Branches.
const NumBranches = 12

var branchNames = [NumBranches]string{"Zi", "Chou", "Yin", "Mao", "Chen", "Si", "Wu", "Wei", "Shen", "You", "Xu", "Hai"}

var branchHanzi = [NumBranches]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

// Valid reports whether b is one of the twelve branches.
func (b Branch) Valid() bool { return b >= 0 && b < NumBranches }

func (b Branch) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Branch(%d)", int(b))
	}
	return branchNames[b]
}

// Hanzi returns the Chinese character for the branch.
func (b Branch) Hanzi() string { return branchHanzi[b] }

// Element returns the branch's element.
func (b Branch) Element() Element { return branchElements[b] }

// Animal returns the zodiac animal of the branch.
func (b Branch) Animal() Animal { return Animal(b) }

// HiddenStems returns the branch's hidden stems. The slice is shared and
// must not be modified.
func (b Branch) HiddenStems() []Stem { return hiddenStems[b] }

// MarshalText encodes the branch by name.
func (b Branch) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// Animal is a zodiac animal, in branch order.
type Animal int

const (
	Rat Animal = iota
	Ox
	Tiger
	Rabbit
	Dragon
	Snake
	Horse
	Goat
	Monkey
	Rooster
	Dog
	Pig
)

// NumAnimals is the number of zodiac animals.
const NumAnimals = 12

var animalNames = [NumAnimals]string{"Rat", "Ox", "Tiger", "Rabbit", "Dragon", "Snake", "Horse", "Goat", "Monkey", "Rooster", "Dog", "Pig"}

// Valid reports whether a is one of the twelve animals.
func (a Animal) Valid() bool { return a >= 0 && a < NumAnimals }

func (a Animal) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Animal(%d)", int(a))
	}
	return animalNames[a]
}

// Branch returns the branch that carries the animal.
func (a Animal) Branch() Branch { return Branch(a) }

// MarshalText encodes the animal by name.
func (a Animal) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText decodes an animal name.
func (a *Animal) UnmarshalText(b []byte) error {
	v, err := ParseAnimal(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// ParseAnimal parses an animal name such as "Horse".
func ParseAnimal(s string) (Animal, error) {
	for i, name := range animalNames {
		if name == s {
			return Animal(i), nil
		}
	}
	return 0, fmt.Errorf("unknown zodiac animal %q", s)
}

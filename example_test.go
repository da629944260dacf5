package typemap_test

import (
	"fmt"

	"github.com/viant/typemap"
)

// Age is a key type: it is never instantiated, it only names the slot
// holding an int.
type Age struct{ typemap.Binding[int] }

// Profile is a key type bound to a struct value.
type Profile struct{ typemap.Binding[ProfileData] }

type ProfileData struct {
	Name  string
	Email string
}

func Example() {
	m := typemap.New()

	typemap.Insert[Age](m, 42)
	typemap.Insert[Profile](m, ProfileData{Name: "alice", Email: "alice@example.com"})

	age, _ := typemap.Get[Age](m)
	profile, _ := typemap.Get[Profile](m)
	fmt.Println(age, profile.Name)

	prev, _ := typemap.Insert[Age](m, 7)
	fmt.Println(prev)

	removed, _ := typemap.Remove[Age](m)
	fmt.Println(removed, typemap.Contains[Age](m))
	// Output:
	// 42 alice
	// 42
	// 7 false
}

func ExampleGetMut() {
	m := typemap.New()
	typemap.Insert[Age](m, 41)

	if age := typemap.GetMut[Age](m); age != nil {
		*age++
	}

	age, _ := typemap.Get[Age](m)
	fmt.Println(age)
	// Output: 42
}

func ExampleEntryOf() {
	m := typemap.New()

	for range 2 {
		count := typemap.EntryOf[Age](m).OrInsert(0)
		*count++
	}

	age, _ := typemap.Get[Age](m)
	fmt.Println(age)
	// Output: 2
}

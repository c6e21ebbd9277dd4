// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package observer

import "fmt"

func Example() {
	subject := NewStateSubject()

	observer1, err := NewNamedObserver("Observer 1", subject)
	if err != nil {
		fmt.Println(err)
		return
	}
	observer2, err := NewNamedObserver("Observer 2", subject)
	if err != nil {
		fmt.Println(err)
		return
	}

	subject.Attach(observer1)
	subject.Attach(observer2)

	subject.SetState("New state")

	subject.Detach(observer2)

	subject.SetState("Another state")

	// Output: Observer 1's new state is New state
	// Observer 2's new state is New state
	// Observer 1's new state is Another state
}

func ExampleStateSubject_Attach_duplicate() {
	subject := NewStateSubject()

	o, err := NewNamedObserver("Observer 1", subject)
	if err != nil {
		fmt.Println(err)
		return
	}

	subject.Attach(o)
	subject.Attach(o)

	subject.SetState("New state")

	// Output: Observer 1's new state is New state
	// Observer 1's new state is New state
}

func ExampleNewNamedObserver_nilSubject() {
	_, err := NewNamedObserver("Observer 1", nil)
	fmt.Println(err)
	// Output: observer "Observer 1": subject must not be nil
}

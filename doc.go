/*
Package cyclicqueue provides a FIFO queue backed by a growable cyclic (ring)
buffer, for pure producer/consumer-at-ends workloads such as task queues,
BFS frontiers, and sliding-window eviction.

The package is built with Go Generics, providing compile-time type safety.
You create a queue for your specific type, and all operations like Push()
and Pop() work directly with that type, eliminating the need for type
assertions.

Key Features:

  - Cyclic Indexing: insertion at the back and removal at the front are O(1)
    with no element shifting; logical position maps to physical index by
    modulo arithmetic.

  - Amortized Geometric Growth: when the buffer fills, capacity grows to
    ceil(capacity * growthFactor) and the items are re-linearized into the
    new buffer, keeping pushes amortized O(1). Capacity is a high-water
    mark and never shrinks, so a drained queue keeps its allocation.

  - Growth Accounting: CapacityIncrements() reports how many reallocations
    have happened, which makes capacity tuning observable.

  - Configurable: the initial capacity and the growth factor are set via
    options at construction and validated there; bad values fail
    construction immediately rather than surfacing later.

A Queue is owned by a single goroutine. No internal locking is performed;
wrap every operation in external synchronization if the queue must be
shared.

Example: Basic Usage

	q, err := cyclicqueue.New[string]()
	if err != nil {
		log.Fatal(err)
	}

	q.Push("first")
	q.Push("second")

	item, err := q.Pop() // "first"
	if err != nil {
		// ErrEmpty: the queue held no items.
	}
	fmt.Println(item)

Example: Tuning Growth

	// Start tiny and grow gently; useful when the typical depth is small
	// but occasional bursts must still be absorbed.
	q, err := cyclicqueue.New[int](
		cyclicqueue.WithInitialCapacity(8),
		cyclicqueue.WithGrowthFactor(1.2),
	)
	if err != nil {
		log.Fatal(err)
	}

	for i := 0; i < 1000; i++ {
		q.Push(i)
	}
	fmt.Printf("capacity %d after %d increments\n",
		q.Capacity(), q.CapacityIncrements())

Example: Draining and Inspecting

	// Snapshot copies the items oldest to newest without mutating the
	// queue; Pop consumes them in the same order.
	pending := q.Snapshot()
	fmt.Printf("%d items pending\n", len(pending))

	for !q.IsEmpty() {
		item, _ := q.Pop()
		process(item)
	}
*/
package cyclicqueue

package collections

// Stats is a point-in-time snapshot of the dictionary's slot accounting.
type Stats struct {
	Count     int
	Capacity  int
	FreeSlots int

	FreeSlotsCapacityRatio float32
}

func (d *ValueDictionary[K, V]) Stats() Stats {
	s := Stats{
		Count:     d.Count(),
		Capacity:  d.Capacity(),
		FreeSlots: d.freeCount,
	}
	if s.Capacity > 0 {
		s.FreeSlotsCapacityRatio = float32(s.FreeSlots) / float32(s.Capacity)
	}

	return s
}

package schedule

const DefaultBarberID = "marius"

// DefaultBarbers is the shop roster used when no schedule file is configured.
func DefaultBarbers() []Barber {
	return []Barber{
		{
			ID:   "marius",
			Name: "Marius",
			Hours: WeeklyHours{
				Weekday:   Hours{Open: 9, Close: 20},
				Wednesday: Hours{Open: 9, Close: 20},
				Weekend:   Hours{Open: 10, Close: 16},
			},
		},
		{
			ID:   "sivert",
			Name: "Sivert",
			Hours: WeeklyHours{
				Weekday:   Hours{Open: 16, Close: 21},
				Wednesday: Hours{Open: 12, Close: 20},
				Weekend:   Hours{Open: 10, Close: 16},
			},
		},
	}
}

func Default() *Schedule {
	s, err := New(DefaultBarbers(), DefaultBarberID)
	if err != nil {
		panic(err)
	}
	return s
}

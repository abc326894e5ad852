package store

import "example.com/extracurricular/internal/catalog"

// seedCatalog returns the fixed set of activities offered this term,
// including students already registered through the front office.
func seedCatalog() []catalog.Activity {
	return []catalog.Activity{
		{
			Name:            "Basketball",
			Description:     "Train with the school team and compete in interschool matches",
			Schedule:        "Wednesdays and Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu", "ava@mergington.edu"},
		},
		{
			Name:            "Tennis",
			Description:     "Singles and doubles practice on the school courts",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 10,
			Participants:    []string{"lucas@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Act in plays and develop stagecraft skills",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"mia@mergington.edu", "noah@mergington.edu"},
		},
		{
			Name:            "Art Studio",
			Description:     "Explore painting, drawing, and sculpture",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"amelia@mergington.edu"},
		},
		{
			Name:            "Debate Team",
			Description:     "Research current topics and compete in debate tournaments",
			Schedule:        "Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 12,
			Participants:    []string{"ethan@mergington.edu", "harper@mergington.edu"},
		},
		{
			Name:            "Science Club",
			Description:     "Hands-on experiments and science fair preparation",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"isabella@mergington.edu"},
		},
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	}
}

package book

import (
	"github.com/starford/findvisor/internal/datetime"
	"github.com/starford/findvisor/internal/models"
)

type sampleMeeting struct{ start, end, remark string }

// Sample returns the contacts shown on first start.
func Sample() *Book {
	return New(
		sample("Alex Yeoh", "87438807", "alexyeoh@gmail.com", "Blk 30 Geylang Street 29, #06-40",
			[]string{"LimFamily", "Father", "PRUGrowth", "PRUtravelsafe"},
			&sampleMeeting{"23-05-2024T16:00", "23-05-2024T18:00", "Online Meeting"},
			"Wants to move to the new house by next January"),
		sample("Elizabeth Yeoh", "89334567", "elyyeoh@gmail.com", "Blk 30 Geylang Street 29, #06-40",
			[]string{"Mother", "LimFamily", "PRUGrowth"}, nil,
			"Also wants to move to the new house by next January"),
		sample("Don Yeoh", "99126297", "donyeoh@gmail.com", "Blk 30 Geylang Street 29, #06-40",
			[]string{"LimFamily", "Child", "PRUGrowth"}, nil, "Still schooling"),
		sample("Bernice Yu", "99272758", "berniceyu@hotmail.com", "Blk 30 Lorong 3 Serangoon Gardens, #07-18",
			[]string{"DavidGirlfriend", "PRUgain365"},
			&sampleMeeting{"16-04-2024T13:00", "16-04-2024T15:00", "Physical meeting at Serangoon Gardens"},
			"Working as SWE, wants to BTO with David"),
		sample("David Li", "91031282", "lidavid@hotmail.com", "Blk 436 Serangoon Gardens Street 26, #16-43",
			[]string{"BerniceBoyfriend", "PRUgain365"},
			&sampleMeeting{"16-04-2024T13:00", "16-04-2024T15:00", "Physical meeting at Serangoon Gardens"},
			"Still schooling, wants to BTO with Bernice"),
	)
}

// sample builds a contact from literals known to be valid.
func sample(name, phone, email, address string, tags []string, m *sampleMeeting, remark string) models.Contact {
	ts := make([]models.Tag, len(tags))
	for i, t := range tags {
		ts[i] = models.Tag(t)
	}
	meeting := models.None[models.Meeting]()
	if m != nil {
		start, _ := datetime.ParseDateTime(m.start)
		end, _ := datetime.ParseDateTime(m.end)
		mt, err := models.NewMeeting(start, end, m.remark)
		if err != nil {
			panic(err)
		}
		meeting = models.Some(mt)
	}
	return models.NewContact(models.Name(name), models.Phone(phone), models.Email(email),
		models.Address(address), models.NewTagSet(ts...), meeting, models.Some(models.Remark(remark)))
}

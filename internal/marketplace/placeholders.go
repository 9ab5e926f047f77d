package marketplace

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/01moynul/locify-golang/internal/models"
)

// Placeholders fills feed fields the data model does not have yet: avatar,
// rating, distance and response time. The values are random and carry no
// meaning; they exist so the landing page has something to render until
// real reputation and location data is stored.
type Placeholders struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPlaceholders uses a fixed seed so tests can predict the output;
// pass a time-based seed in production.
func NewPlaceholders(seed uint64) *Placeholders {
	return &Placeholders{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Fill sets the placeholder fields on entry. index is the entry's
// position in the feed and only affects the avatar.
//
// rating is in [4.5, 5.0), distance in [0.1, 2.1) miles and the response
// time between 1 and 30 minutes ago.
func (p *Placeholders) Fill(entry *models.FeedEntry, index int) {
	p.mu.Lock()
	rating := 4.5 + p.rng.Float64()*0.5
	distance := 0.1 + p.rng.Float64()*2
	minutes := p.rng.IntN(30) + 1
	p.mu.Unlock()

	rating = math.Floor(rating*100) / 100
	distance = math.Floor(distance*10) / 10

	entry.Avatar = fmt.Sprintf("https://images.unsplash.com/photo-%d?w=150&h=150&fit=crop&crop=face", 1507003211169+index*1000)
	entry.Rating = &rating
	entry.Distance = fmt.Sprintf("%.1f mi", distance)
	entry.ResponseTime = fmt.Sprintf("%d min ago", minutes)
}

package report

import (
	"fmt"
	"io"
	"strings"

	"topphysics/bootstrap"
)

var collectionIcons = map[string]string{
	bootstrap.Students:   "📚",
	bootstrap.Assistants: "👥",
	bootstrap.History:    "📖",
	bootstrap.Centers:    "🏢",
}

// Console prints seed progress for an operator. It implements bootstrap.Observer.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.w, format+"\n", args...)
}

func (c *Console) Connected(uri, dbName string) {
	c.printf("🔗 Using Mongo URI: %s", uri)
	c.printf("✅ Connected to MongoDB: %s", dbName)
}

func (c *Console) CollectionChecked(name string, created bool) {
	if created {
		c.printf("%s Created %s collection", collectionIcons[name], name)
		return
	}
	c.printf("✅ %s collection already exists", title(name))
}

func (c *Console) CollectionCleared(name string, deleted int64) {
	c.printf("🗑️ Cleared %s (%d documents)", name, deleted)
}

func (c *Console) AssistantsCreated(n int) {
	c.printf("✅ Created %d assistants", n)
}

func (c *Console) CentersCreated(n int) {
	c.printf("✅ Created %d centers", n)
	c.printf("👨‍🎓 Students collection left empty (no demo students created)")
}

// Summary prints the outcome of a run and the administrator logins. The
// passwords shown are the fixture plaintexts that were hashed and stored.
func (c *Console) Summary(res bootstrap.Result, assistants []bootstrap.AssistantSeed) {
	c.printf("🎉 Database seeded successfully!")
	c.printf("")
	c.printf("📊 Summary:")
	if len(res.Ensure.Created) > 0 {
		c.printf("- Collections created: %s", strings.Join(res.Ensure.Created, ", "))
	}
	c.printf("- Collections ready: %s", strings.Join(bootstrap.RequiredCollections, ", "))
	c.printf("- %d assistants created", res.Seed.AssistantsCreated)
	c.printf("- %d students created (students collection is empty)", res.Seed.StudentsCreated)
	c.printf("- %d centers created", res.Seed.CentersCreated)
	if res.Seed.HistoryCleared {
		c.printf("- History collection cleared (no initial records)")
	}
	c.printf("")
	c.printf("🔑 Login credentials:")
	for _, a := range assistants {
		c.printf("%s ID: %s, Password: %s", a.Name, a.ID, a.Password)
	}
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

package actions

import (
	"context"

	"portfolio/models"
)

// Content bundles the read side of every collection the AI assistant feeds
// on. It exists so the assistant can depend on plain read methods instead of
// the full action modules.
type Content struct {
	Site         *Site
	Projects     *Projects
	Blogs        *Blogs
	Certificates *Certificates
	Educations   *Educations
	Experiences  *Experiences
	FAQs         *FAQs
}

func (c *Content) Intro(ctx context.Context) (*models.Intro, error) {
	return c.Site.Intro(ctx)
}

func (c *Content) About(ctx context.Context) (*models.About, error) {
	return c.Site.About(ctx)
}

func (c *Content) AllProjects(ctx context.Context) ([]models.Project, error) {
	return c.Projects.List(ctx, Filter{})
}

func (c *Content) AllBlogs(ctx context.Context) ([]models.Blog, error) {
	return c.Blogs.List(ctx, Filter{})
}

func (c *Content) AllCertificates(ctx context.Context) ([]models.Certificate, error) {
	return c.Certificates.List(ctx, Filter{})
}

func (c *Content) AllEducations(ctx context.Context) ([]models.Education, error) {
	return c.Educations.List(ctx)
}

func (c *Content) AllExperiences(ctx context.Context) ([]models.Experience, error) {
	return c.Experiences.List(ctx)
}

func (c *Content) AllFAQs(ctx context.Context) ([]models.FAQ, error) {
	return c.FAQs.List(ctx)
}

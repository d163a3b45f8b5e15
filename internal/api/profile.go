package api

import (
	"context"
	"io"
	"net/http"
)

func (c *Client) SeekerProfile(ctx context.Context) (*SeekerProfile, error) {
	var out SeekerProfile
	if err := c.do(ctx, http.MethodGet, "/profile/seeker", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSeekerProfile(ctx context.Context, form SeekerProfileForm) (*SeekerProfile, error) {
	var out SeekerProfile
	if err := c.do(ctx, http.MethodPut, "/profile/seeker", nil, form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddSkill(ctx context.Context, skill Skill) (*Skill, error) {
	var out Skill
	if err := c.do(ctx, http.MethodPost, "/profile/seeker/skills", nil, skill, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RemoveSkill(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/profile/seeker/skills/"+id, nil, nil, nil)
}

func (c *Client) AddExperience(ctx context.Context, exp Experience) (*Experience, error) {
	var out Experience
	if err := c.do(ctx, http.MethodPost, "/profile/seeker/experience", nil, exp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateExperience(ctx context.Context, id string, exp Experience) (*Experience, error) {
	var out Experience
	if err := c.do(ctx, http.MethodPut, "/profile/seeker/experience/"+id, nil, exp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RemoveExperience(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/profile/seeker/experience/"+id, nil, nil, nil)
}

func (c *Client) AddEducation(ctx context.Context, edu Education) (*Education, error) {
	var out Education
	if err := c.do(ctx, http.MethodPost, "/profile/seeker/education", nil, edu, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RemoveEducation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/profile/seeker/education/"+id, nil, nil, nil)
}

// DownloadCV streams the generated CV PDF into w.
func (c *Client) DownloadCV(ctx context.Context, w io.Writer) error {
	return c.download(ctx, "/profile/seeker/cv", w)
}

func (c *Client) CompanyProfile(ctx context.Context) (*CompanyProfile, error) {
	var out CompanyProfile
	if err := c.do(ctx, http.MethodGet, "/profile/company", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCompanyProfile(ctx context.Context, form CompanyProfileForm) (*CompanyProfile, error) {
	var out CompanyProfile
	if err := c.do(ctx, http.MethodPut, "/profile/company", nil, form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DownloadCompanyPDF streams the company profile PDF into w.
func (c *Client) DownloadCompanyPDF(ctx context.Context, w io.Writer) error {
	return c.download(ctx, "/profile/company/pdf", w)
}

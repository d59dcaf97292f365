package client

import (
	"context"

	"portfolio/internal/domain/category"
	"portfolio/internal/domain/entities"
)

const (
	ResourcePersonal   = "personal"
	ResourceSocial     = "social"
	ResourceSkills     = "skills"
	ResourceExperience = "experience"
	ResourceProjects   = "projects"
	ResourceAwards     = "awards"
	ResourceImages     = "images"
	ResourceVideos     = "videos"
)

// ListAs fetches a collection into []T. The result is never nil on success.
func ListAs[T any](ctx context.Context, c *Client, resource, category string) ([]T, error) {
	items := make([]T, 0)
	if err := c.List(ctx, resource, category, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = make([]T, 0) // "null" body
	}
	return items, nil
}

func GetAs[T any](ctx context.Context, c *Client, resource string) (*T, error) {
	var item T
	if err := c.Get(ctx, resource, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func CreateAs[T any](ctx context.Context, c *Client, resource string, payload any) (*T, error) {
	var item T
	if err := c.Create(ctx, resource, payload, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func UpdateAs[T any](ctx context.Context, c *Client, resource, id string, payload any) (*T, error) {
	var item T
	if err := c.Update(ctx, resource, id, payload, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) Personal(ctx context.Context) (*entities.PersonalInfo, error) {
	return GetAs[entities.PersonalInfo](ctx, c, ResourcePersonal)
}

func (c *Client) Social(ctx context.Context) (*entities.SocialLinks, error) {
	return GetAs[entities.SocialLinks](ctx, c, ResourceSocial)
}

func (c *Client) Skills(ctx context.Context) ([]entities.Skill, error) {
	return ListAs[entities.Skill](ctx, c, ResourceSkills, "")
}

func (c *Client) Experience(ctx context.Context) ([]entities.Experience, error) {
	return ListAs[entities.Experience](ctx, c, ResourceExperience, "")
}

func (c *Client) Projects(ctx context.Context) ([]entities.Project, error) {
	return ListAs[entities.Project](ctx, c, ResourceProjects, "")
}

func (c *Client) Awards(ctx context.Context) ([]entities.Award, error) {
	return ListAs[entities.Award](ctx, c, ResourceAwards, "")
}

// Images lists photos; an empty category lists all of them.
func (c *Client) Images(ctx context.Context, cat category.Category) ([]entities.Image, error) {
	return ListAs[entities.Image](ctx, c, ResourceImages, string(cat))
}

func (c *Client) Videos(ctx context.Context, cat category.Category) ([]entities.Video, error) {
	return ListAs[entities.Video](ctx, c, ResourceVideos, string(cat))
}

func (c *Client) UploadImage(ctx context.Context, req UploadRequest) (*entities.Image, error) {
	var image entities.Image
	if err := c.Upload(ctx, category.KindPhoto, req, &image); err != nil {
		return nil, err
	}
	return &image, nil
}

func (c *Client) UploadVideo(ctx context.Context, req UploadRequest) (*entities.Video, error) {
	var video entities.Video
	if err := c.Upload(ctx, category.KindVideo, req, &video); err != nil {
		return nil, err
	}
	return &video, nil
}

// DeleteMedia removes an image or video by id.
func (c *Client) DeleteMedia(ctx context.Context, kind category.Kind, id string) error {
	return c.Delete(ctx, string(kind), id)
}

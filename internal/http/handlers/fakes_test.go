package handlers

import (
	"context"
	"fmt"

	"server/internal/domain"
)

type fakeBlueprintRepo struct {
	blueprints []domain.Blueprint
	seedCalls  int
}

func (f *fakeBlueprintRepo) GetByID(_ context.Context, id string) (*domain.Blueprint, error) {
	for i := range f.blueprints {
		if f.blueprints[i].ID == id {
			return &f.blueprints[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeBlueprintRepo) GetByKind(_ context.Context, kind domain.BlueprintKind) (*domain.Blueprint, error) {
	for i := range f.blueprints {
		if f.blueprints[i].Kind == kind {
			return &f.blueprints[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeBlueprintRepo) List(context.Context) ([]domain.Blueprint, error) {
	return f.blueprints, nil
}

func (f *fakeBlueprintRepo) SeedDefaults(_ context.Context, defs []domain.Blueprint) (int, error) {
	f.seedCalls++
	present := make(map[domain.BlueprintKind]struct{}, len(f.blueprints))
	for _, b := range f.blueprints {
		present[b.Kind] = struct{}{}
	}
	inserted := 0
	for _, def := range defs {
		if _, ok := present[def.Kind]; ok {
			continue
		}
		def.ID = fmt.Sprintf("bp-%s", def.Kind)
		f.blueprints = append(f.blueprints, def)
		inserted++
	}
	return inserted, nil
}

type fakeRecipeRepo struct {
	recipes map[string]*domain.Recipe
}

func (f *fakeRecipeRepo) GetByID(_ context.Context, id string) (*domain.Recipe, error) {
	if recipe, ok := f.recipes[id]; ok {
		return recipe, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRecipeRepo) Create(_ context.Context, recipe *domain.Recipe) error {
	if f.recipes == nil {
		f.recipes = map[string]*domain.Recipe{}
	}
	f.recipes[recipe.ID] = recipe
	return nil
}

type fakeJobRepo struct {
	jobs      []*domain.ContentJob
	artifacts []*domain.CampaignArtifact
	listItems []domain.ContentJobListItem
	listErr   error
}

func (f *fakeJobRepo) Create(_ context.Context, job *domain.ContentJob) error {
	f.jobs = append(f.jobs, job)
	return nil
}

func (f *fakeJobRepo) CreateWithArtifact(_ context.Context, job *domain.ContentJob, artifact *domain.CampaignArtifact) error {
	f.jobs = append(f.jobs, job)
	f.artifacts = append(f.artifacts, artifact)
	return nil
}

func (f *fakeJobRepo) List(context.Context, domain.ContentJobFilter) ([]domain.ContentJobListItem, error) {
	return f.listItems, f.listErr
}

type fakeCampaignRepo struct {
	campaigns map[string]*domain.Campaign
	artifacts map[string][]domain.CampaignArtifact
}

func (f *fakeCampaignRepo) GetByID(_ context.Context, id string) (*domain.Campaign, error) {
	if campaign, ok := f.campaigns[id]; ok {
		return campaign, nil
	}
	return nil, domain.ErrCampaignNotFound
}

func (f *fakeCampaignRepo) AttachArtifact(_ context.Context, artifact *domain.CampaignArtifact) error {
	if f.artifacts == nil {
		f.artifacts = map[string][]domain.CampaignArtifact{}
	}
	f.artifacts[artifact.CampaignID] = append(f.artifacts[artifact.CampaignID], *artifact)
	return nil
}

func (f *fakeCampaignRepo) ListArtifacts(_ context.Context, campaignID string) ([]domain.CampaignArtifact, error) {
	return f.artifacts[campaignID], nil
}

var (
	_ domain.BlueprintRepository  = (*fakeBlueprintRepo)(nil)
	_ domain.RecipeRepository     = (*fakeRecipeRepo)(nil)
	_ domain.ContentJobRepository = (*fakeJobRepo)(nil)
	_ domain.CampaignRepository   = (*fakeCampaignRepo)(nil)
)

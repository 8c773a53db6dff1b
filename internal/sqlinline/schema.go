package sqlinline

// Schema bootstrap statements run by cmd/seed. Each statement is idempotent.

const QCreateBlueprintsTable = `--sql 2043d680-ce6a-45a6-88b6-3327c0e1ab36
create table if not exists blueprints (
  id uuid primary key default gen_random_uuid(),
  name text not null,
  kind text not null unique,
  description text not null default '',
  input_schema jsonb not null default '[]'::jsonb,
  output_schema jsonb not null default '[]'::jsonb,
  defaults jsonb not null default '{}'::jsonb,
  created_at timestamptz not null default now()
);
`

const QCreateRecipesTable = `--sql fab9be17-1913-4f39-b93e-9554fa590abc
create table if not exists recipes (
  id uuid primary key default gen_random_uuid(),
  title text not null,
  data jsonb not null default '{}'::jsonb,
  created_at timestamptz not null default now()
);
`

const QCreateContentJobsTable = `--sql 2aa89a4d-f4ba-4f9d-9900-c3ad9d458370
create table if not exists content_jobs (
  id uuid primary key,
  recipe_id uuid references recipes(id),
  source_type text not null,
  blueprint_id uuid not null references blueprints(id),
  status text not null,
  inputs jsonb not null default '{}'::jsonb,
  outputs jsonb,
  errors jsonb,
  created_at timestamptz not null default now(),
  updated_at timestamptz not null default now()
);
`

const QCreateCampaignsTable = `--sql d8ea9c32-6f8b-49c1-931c-e85852ac866e
create table if not exists campaigns (
  id uuid primary key default gen_random_uuid(),
  name text not null unique,
  status text not null default 'draft',
  created_at timestamptz not null default now()
);
`

const QCreateCampaignArtifactsTable = `--sql 7c12c035-13df-4bfe-aae0-2cf9235d7044
create table if not exists campaign_artifacts (
  id uuid primary key,
  campaign_id uuid not null references campaigns(id),
  channel text not null,
  variant text not null default '',
  payload jsonb not null,
  created_at timestamptz not null default now()
);
`

const QCreateUsageEventsTable = `--sql db30cdf7-c3b5-4c9f-8f4e-a9b888bf5767
create table if not exists usage_events (
  id uuid primary key,
  event_type text not null,
  blueprint_kind text not null default '',
  success boolean not null default true,
  country text,
  properties jsonb not null default '{}'::jsonb,
  created_at timestamptz not null default now()
);
`

const QInsertDemoCampaign = `--sql cda20ea1-5715-422d-bd6b-be980586ae2e
insert into campaigns(id, name, status)
values (gen_random_uuid(), $1::text, 'active')
on conflict (name) do nothing
returning id;
`

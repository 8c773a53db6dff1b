package sqlinline

const QInsertUsageEvent = `--sql b5861b45-e1dc-415c-ac4d-00bfaec6eeee
insert into usage_events(id, event_type, blueprint_kind, success, country, properties, created_at)
values (gen_random_uuid(), $1::text, $2::text, $3::boolean, nullif($4::text, ''), coalesce($5::jsonb, '{}'::jsonb), now());
`

const QDashboard24h = `--sql f4f8e1d3-28da-413c-a0f9-6b9add1088fa
with agg as (
  select
    count(*) filter (where event_type = 'CONTENT_GENERATE' and success) as generated,
    count(*) filter (where event_type = 'CONTENT_GENERATE' and not success) as failed,
    count(*) filter (where event_type = 'CONTENT_PREVIEW') as previews
  from usage_events
  where created_at >= now() - interval '24 hours'
)
select generated, failed, previews,
       round(100.0 * generated / nullif(generated + failed, 0), 2) as success_rate
from agg;
`

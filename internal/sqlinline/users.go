// Package sqlinline holds the SQL executed by the service. Every statement
// starts with a "--sql <uuid>" marker so the runner can log and the lint pass
// can track individual queries.
package sqlinline

const QSelectPremiumByUserID = `--sql 3f1c9a4e-81d2-4c6b-9a0f-5e7d2b8c4a11
select premium
from users
where id = $1::uuid
limit 1;
`

const QSelectUserByEmail = `--sql 7b2d4f8a-3c1e-4a5d-8b6f-9e0a1c2d3f42
select id, email, premium
from users
where lower(email) = lower($1)
limit 1;
`

const QSelectUserByID = `--sql c5e8a1b3-6d4f-4e2a-b7c9-0f1d2e3a4b53
select id, email, premium
from users
where id = $1::uuid
limit 1;
`

const QUpdateUserPremium = `--sql a9d0c2e4-5b3f-4d1a-8e6c-7f2b3a4c5d64
update users
set premium = $2,
    updated_at = now()
where id = $1::uuid
returning id, email, premium;
`

package otprepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/mantoshmedhansh-dot/lma/internal/adapters/out/postgres/otprepo"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/otp"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OtpRepositoryIntegrationTestSuite verifies the supersede and lookup
// behavior of OTP persistence against a real PostgreSQL instance.
type OtpRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *otprepo.GormOtpRepository
}

func (suite *OtpRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&otprepo.TokenDTO{}))
}

func (suite *OtpRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE otp_tokens").Error)
	suite.repository = otprepo.NewGormOtpRepository(suite.db)
}

func (suite *OtpRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OtpRepositoryIntegrationTestSuite) newToken(orderID kernel.UUID, tokenType otp.TokenType, code string, issuedAt time.Time) *otp.Token {
	token, err := otp.NewToken(kernel.NewUUID(), orderID, tokenType, code, "9876512233", issuedAt)
	suite.Require().NoError(err)
	return token
}

func (suite *OtpRepositoryIntegrationTestSuite) TestGetActiveByOrder_ReturnsNewest() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	base := time.Now().UTC().Truncate(time.Second)

	older := suite.newToken(orderID, otp.TypeDelivery, "111111", base.Add(-time.Minute))
	suite.Require().NoError(suite.repository.Add(ctx, older))

	newer := suite.newToken(orderID, otp.TypeDelivery, "222222", base)
	suite.Require().NoError(suite.repository.Add(ctx, newer))

	active, err := suite.repository.GetActiveByOrder(ctx, orderID, otp.TypeDelivery)
	suite.Require().NoError(err)
	suite.Equal("222222", active.Code())
}

func (suite *OtpRepositoryIntegrationTestSuite) TestGetActiveByOrder_NoActiveToken() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	retired := suite.newToken(orderID, otp.TypeDelivery, "111111", time.Now().UTC())
	retired.Invalidate()
	suite.Require().NoError(suite.repository.Add(ctx, retired))

	_, err := suite.repository.GetActiveByOrder(ctx, orderID, otp.TypeDelivery)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OtpRepositoryIntegrationTestSuite) TestDeliveryAndReturnTokensCoexist() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	now := time.Now().UTC().Truncate(time.Second)

	suite.Require().NoError(suite.repository.Add(ctx,
		suite.newToken(orderID, otp.TypeDelivery, "111111", now)))
	suite.Require().NoError(suite.repository.Add(ctx,
		suite.newToken(orderID, otp.TypeReturn, "222222", now)))

	delivery, err := suite.repository.GetActiveByOrder(ctx, orderID, otp.TypeDelivery)
	suite.Require().NoError(err)
	suite.Equal("111111", delivery.Code())

	ret, err := suite.repository.GetActiveByOrder(ctx, orderID, otp.TypeReturn)
	suite.Require().NoError(err)
	suite.Equal("222222", ret.Code())

	// Retiring the return codes leaves the delivery code verifiable.
	suite.Require().NoError(suite.repository.InvalidateActiveByOrder(ctx, orderID, otp.TypeReturn))

	_, err = suite.repository.GetActiveByOrder(ctx, orderID, otp.TypeReturn)
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	delivery, err = suite.repository.GetActiveByOrder(ctx, orderID, otp.TypeDelivery)
	suite.Require().NoError(err)
	suite.Equal("111111", delivery.Code())
}

func (suite *OtpRepositoryIntegrationTestSuite) TestInvalidateActiveByOrder_RetiresAllActive() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	now := time.Now().UTC()

	suite.Require().NoError(suite.repository.Add(ctx,
		suite.newToken(orderID, otp.TypeDelivery, "111111", now.Add(-time.Minute))))
	suite.Require().NoError(suite.repository.Add(ctx,
		suite.newToken(orderID, otp.TypeDelivery, "222222", now)))

	otherOrder := kernel.NewUUID()
	suite.Require().NoError(suite.repository.Add(ctx,
		suite.newToken(otherOrder, otp.TypeDelivery, "333333", now)))

	suite.Require().NoError(suite.repository.InvalidateActiveByOrder(ctx, orderID, otp.TypeDelivery))

	_, err := suite.repository.GetActiveByOrder(ctx, orderID, otp.TypeDelivery)
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	unaffected, err := suite.repository.GetActiveByOrder(ctx, otherOrder, otp.TypeDelivery)
	suite.Require().NoError(err)
	suite.Equal("333333", unaffected.Code())
}

func (suite *OtpRepositoryIntegrationTestSuite) TestUpdate_PersistsVerification() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	now := time.Now().UTC().Truncate(time.Second)

	token := suite.newToken(orderID, otp.TypeDelivery, "444444", now)
	suite.Require().NoError(suite.repository.Add(ctx, token))

	suite.Require().NoError(token.Verify("444444", now.Add(time.Minute)))
	suite.Require().NoError(suite.repository.Update(ctx, token))

	// A verified token is no longer active.
	_, err := suite.repository.GetActiveByOrder(ctx, orderID, otp.TypeDelivery)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOtpRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OtpRepositoryIntegrationTestSuite))
}

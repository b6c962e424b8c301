package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"worknest/internal/models/db_models"
)

// --- repository fakes ---

type fakeUserRepo struct {
	byEmail map[string]*db_models.User
	byID    map[uuid.UUID]*db_models.User

	inserted []*db_models.User
	findErr  error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*db_models.User),
		byID:    make(map[uuid.UUID]*db_models.User),
	}
}

func (f *fakeUserRepo) add(u *db_models.User) *db_models.User {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return u
}

func (f *fakeUserRepo) Insert(_ context.Context, user *db_models.User) error {
	f.inserted = append(f.inserted, user)
	f.add(user)
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*db_models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.User, error) {
	return f.byID[id], nil
}

func (f *fakeUserRepo) UpdateByID(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if _, ok := f.byID[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, email string, passwordHash string) error {
	u, ok := f.byEmail[email]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (f *fakeUserRepo) SetBlocked(_ context.Context, id uuid.UUID, blocked bool) error {
	u, ok := f.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.IsBlocked = blocked
	return nil
}

func (f *fakeUserRepo) SearchByName(_ context.Context, query string) ([]db_models.User, error) {
	var out []db_models.User
	for _, u := range f.byID {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) ListAll(_ context.Context) ([]db_models.User, error) {
	return f.SearchByName(context.Background(), "")
}

type fakeCompanyRepo struct {
	byEmail map[string]*db_models.Company
	byID    map[uuid.UUID]*db_models.Company

	inserted []*db_models.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{
		byEmail: make(map[string]*db_models.Company),
		byID:    make(map[uuid.UUID]*db_models.Company),
	}
}

func (f *fakeCompanyRepo) add(c *db_models.Company) *db_models.Company {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	f.byEmail[c.Email] = c
	f.byID[c.ID] = c
	return c
}

func (f *fakeCompanyRepo) Insert(_ context.Context, company *db_models.Company) error {
	f.inserted = append(f.inserted, company)
	f.add(company)
	return nil
}

func (f *fakeCompanyRepo) FindByEmail(_ context.Context, email string) (*db_models.Company, error) {
	return f.byEmail[email], nil
}

func (f *fakeCompanyRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Company, error) {
	return f.byID[id], nil
}

func (f *fakeCompanyRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]db_models.Company, error) {
	var out []db_models.Company
	for _, id := range ids {
		if c, ok := f.byID[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCompanyRepo) UpdateByID(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if _, ok := f.byID[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (f *fakeCompanyRepo) UpdatePassword(_ context.Context, email string, passwordHash string) error {
	c, ok := f.byEmail[email]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.PasswordHash = passwordHash
	return nil
}

func (f *fakeCompanyRepo) SetBlocked(_ context.Context, id uuid.UUID, blocked bool) error {
	c, ok := f.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.IsBlocked = blocked
	return nil
}

func (f *fakeCompanyRepo) SetVerification(_ context.Context, id uuid.UUID, status db_models.VerificationStatus) error {
	c, ok := f.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.IsVerified = status
	return nil
}

func (f *fakeCompanyRepo) ListAll(_ context.Context) ([]db_models.Company, error) {
	var out []db_models.Company
	for _, c := range f.byID {
		out = append(out, *c)
	}
	return out, nil
}

type fakeJobRepo struct {
	byID map[uuid.UUID]*db_models.JobPost

	inserted []*db_models.JobPost
	updated  []*db_models.JobPost
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{byID: make(map[uuid.UUID]*db_models.JobPost)}
}

func (f *fakeJobRepo) add(p *db_models.JobPost) *db_models.JobPost {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.byID[p.ID] = p
	return p
}

func (f *fakeJobRepo) Insert(_ context.Context, post *db_models.JobPost) error {
	f.inserted = append(f.inserted, post)
	f.add(post)
	return nil
}

func (f *fakeJobRepo) Update(_ context.Context, post *db_models.JobPost) error {
	if _, ok := f.byID[post.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.updated = append(f.updated, post)
	f.byID[post.ID] = post
	return nil
}

func (f *fakeJobRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.JobPost, error) {
	return f.byID[id], nil
}

func (f *fakeJobRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeJobRepo) ListOpen(_ context.Context) ([]db_models.JobPost, error) {
	var out []db_models.JobPost
	for _, p := range f.byID {
		if p.Status == db_models.JobStatusOpen {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) ListByCompany(_ context.Context, companyID uuid.UUID) ([]db_models.JobPost, error) {
	var out []db_models.JobPost
	for _, p := range f.byID {
		if p.CompanyID == companyID {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeApplicationRepo struct {
	byID map[uuid.UUID]*db_models.JobApplication

	inserted      []*db_models.JobApplication
	statusUpdates []db_models.ApplicationStatus
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{byID: make(map[uuid.UUID]*db_models.JobApplication)}
}

func (f *fakeApplicationRepo) add(a *db_models.JobApplication) *db_models.JobApplication {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	f.byID[a.ID] = a
	return a
}

func (f *fakeApplicationRepo) Insert(_ context.Context, application *db_models.JobApplication) error {
	f.inserted = append(f.inserted, application)
	f.add(application)
	return nil
}

func (f *fakeApplicationRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.JobApplication, error) {
	return f.byID[id], nil
}

func (f *fakeApplicationRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]db_models.JobApplication, error) {
	var out []db_models.JobApplication
	for _, a := range f.byID {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) ListByCompany(_ context.Context, companyID uuid.UUID) ([]db_models.JobApplication, error) {
	var out []db_models.JobApplication
	for _, a := range f.byID {
		if a.CompanyID == companyID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]db_models.JobApplication, error) {
	var out []db_models.JobApplication
	for _, a := range f.byID {
		if a.JobID == jobID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status db_models.ApplicationStatus, message string) error {
	a, ok := f.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.Status = status
	a.StatusMessage = message
	f.statusUpdates = append(f.statusUpdates, status)
	return nil
}

func (f *fakeApplicationRepo) SetInterview(_ context.Context, id uuid.UUID, status db_models.InterviewStatus, at *int64, message string) error {
	a, ok := f.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.InterviewStatus = status
	a.InterviewAt = at
	a.InterviewMessage = message
	return nil
}

type fakeSubscriptionRepo struct {
	plans   map[uuid.UUID]*db_models.Plan
	current map[uuid.UUID]*db_models.Subscription

	subscriptions []*db_models.Subscription
	history       []*db_models.SubscriptionHistory
	deactivated   []uuid.UUID
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{
		plans:   make(map[uuid.UUID]*db_models.Plan),
		current: make(map[uuid.UUID]*db_models.Subscription),
	}
}

func (f *fakeSubscriptionRepo) addPlan(p *db_models.Plan) *db_models.Plan {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.plans[p.ID] = p
	return p
}

func (f *fakeSubscriptionRepo) FindPlanByID(_ context.Context, id uuid.UUID) (*db_models.Plan, error) {
	return f.plans[id], nil
}

func (f *fakeSubscriptionRepo) ListPlans(_ context.Context, activeOnly bool) ([]db_models.Plan, error) {
	var out []db_models.Plan
	for _, p := range f.plans {
		if !activeOnly || p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeSubscriptionRepo) InsertPlan(_ context.Context, plan *db_models.Plan) error {
	f.addPlan(plan)
	return nil
}

func (f *fakeSubscriptionRepo) SetPlanActive(_ context.Context, id uuid.UUID, active bool) error {
	p, ok := f.plans[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.IsActive = active
	return nil
}

func (f *fakeSubscriptionRepo) InsertSubscription(_ context.Context, sub *db_models.Subscription) error {
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	f.subscriptions = append(f.subscriptions, sub)
	f.current[sub.UserID] = sub
	return nil
}

func (f *fakeSubscriptionRepo) DeactivateCurrent(_ context.Context, userID uuid.UUID) error {
	f.deactivated = append(f.deactivated, userID)
	if sub, ok := f.current[userID]; ok {
		sub.IsCurrent = false
		sub.Status = db_models.SubStatusExpired
		delete(f.current, userID)
	}
	return nil
}

func (f *fakeSubscriptionRepo) CurrentForUser(_ context.Context, userID uuid.UUID) (*db_models.Subscription, error) {
	return f.current[userID], nil
}

func (f *fakeSubscriptionRepo) InsertHistory(_ context.Context, record *db_models.SubscriptionHistory) error {
	f.history = append(f.history, record)
	return nil
}

func (f *fakeSubscriptionRepo) HistoryForUser(_ context.Context, userID uuid.UUID) ([]db_models.SubscriptionHistory, error) {
	var out []db_models.SubscriptionHistory
	for _, h := range f.history {
		if h.UserID == userID {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (f *fakeSubscriptionRepo) ListAllSubscriptions(_ context.Context) ([]db_models.Subscription, error) {
	var out []db_models.Subscription
	for _, s := range f.subscriptions {
		out = append(out, *s)
	}
	return out, nil
}

// --- collaborator fakes ---

type sentMail struct {
	to   string
	code string
}

type fakeMail struct {
	otps    []sentMail
	status  []sentMail
	sendErr error
}

func (f *fakeMail) SendOtpMail(to string, code string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.otps = append(f.otps, sentMail{to: to, code: code})
	return nil
}

func (f *fakeMail) SendApplicationStatusMail(to, companyName, jobTitle, status string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.status = append(f.status, sentMail{to: to, code: status})
	return nil
}

// lastOtp returns the most recent code mailed to anyone.
func (f *fakeMail) lastOtp() string {
	if len(f.otps) == 0 {
		return ""
	}
	return f.otps[len(f.otps)-1].code
}

type fakeStorage struct {
	objects   map[string][]byte
	uploadErr error
	n         int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (f *fakeStorage) Upload(_ context.Context, prefix string, data []byte, _ string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.n++
	key := fmt.Sprintf("%s/obj-%d", prefix, f.n)
	f.objects[key] = data
	return key, nil
}

func (f *fakeStorage) Fetch(_ context.Context, key string) ([]byte, error) {
	return f.objects[key], nil
}

func (f *fakeStorage) PresignedGetURL(_ context.Context, key string) (string, error) {
	return "https://storage.test/" + key, nil
}

type fakeGateway struct {
	orderID   string
	createErr error

	gotAmount   int64
	gotCurrency string
	gotReceipt  string
}

func (f *fakeGateway) CreateOrder(_ context.Context, amountMinor int64, currency string, receipt string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.gotAmount = amountMinor
	f.gotCurrency = currency
	f.gotReceipt = receipt
	return f.orderID, nil
}

type fakeChatRepo struct {
	chats    map[uuid.UUID]*db_models.Chat
	messages []*db_models.ChatMessage

	findErr   error
	insertErr error
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{chats: make(map[uuid.UUID]*db_models.Chat)}
}

func (f *fakeChatRepo) InsertChat(_ context.Context, chat *db_models.Chat) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if chat.ID == uuid.Nil {
		chat.ID = uuid.New()
	}
	f.chats[chat.ID] = chat
	return nil
}

func (f *fakeChatRepo) FindChatByID(_ context.Context, id uuid.UUID) (*db_models.Chat, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.chats[id], nil
}

func (f *fakeChatRepo) FindChatByPair(_ context.Context, userID uuid.UUID, companyID uuid.UUID) (*db_models.Chat, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, chat := range f.chats {
		if chat.UserID == userID && chat.CompanyID == companyID {
			return chat, nil
		}
	}
	return nil, nil
}

func (f *fakeChatRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]db_models.Chat, error) {
	var out []db_models.Chat
	for _, chat := range f.chats {
		if chat.UserID == userID {
			out = append(out, *chat)
		}
	}
	return out, nil
}

func (f *fakeChatRepo) ListByCompany(_ context.Context, companyID uuid.UUID) ([]db_models.Chat, error) {
	var out []db_models.Chat
	for _, chat := range f.chats {
		if chat.CompanyID == companyID {
			out = append(out, *chat)
		}
	}
	return out, nil
}

func (f *fakeChatRepo) InsertMessage(_ context.Context, message *db_models.ChatMessage) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeChatRepo) ListMessages(_ context.Context, chatID uuid.UUID) ([]db_models.ChatMessage, error) {
	var out []db_models.ChatMessage
	for _, message := range f.messages {
		if message.ChatID == chatID {
			out = append(out, *message)
		}
	}
	return out, nil
}

func (f *fakeChatRepo) TouchLastMessage(_ context.Context, chatID uuid.UUID, content string, at int64) error {
	chat, ok := f.chats[chatID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	chat.LastMessage = content
	chat.LastMessageAt = at
	return nil
}

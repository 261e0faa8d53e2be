package database

import (
	"gorm.io/gorm"
)

type Database struct {
	articleRepo        *ArticleRepo
	eventRepo          *EventRepo
	tagRepo            *TagRepo
	jobRepo            *JobRepo
	serviceRepo        *ServiceRepo
	teamRepo           *TeamRepo
	partnerRepo        *PartnerRepo
	hallOfFameRepo     *HallOfFameRepo
	successStoryRepo   *SuccessStoryRepo
	subscriberRepo     *SubscriberRepo
	mediaRepo          *MediaRepo
	commentRepo        *CommentRepo
	analyticsRepo      *AnalyticsRepo
	contactMessageRepo *ContactMessageRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		articleRepo:        NewArticleRepo(db),
		eventRepo:          NewEventRepo(db),
		tagRepo:            NewTagRepo(db),
		jobRepo:            NewJobRepo(db),
		serviceRepo:        NewServiceRepo(db),
		teamRepo:           NewTeamRepo(db),
		partnerRepo:        NewPartnerRepo(db),
		hallOfFameRepo:     NewHallOfFameRepo(db),
		successStoryRepo:   NewSuccessStoryRepo(db),
		subscriberRepo:     NewSubscriberRepo(db),
		mediaRepo:          NewMediaRepo(db),
		commentRepo:        NewCommentRepo(db),
		analyticsRepo:      NewAnalyticsRepo(db),
		contactMessageRepo: NewContactMessageRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ArticleRepo() *ArticleRepo {
	return d.articleRepo
}

func (d Database) EventRepo() *EventRepo {
	return d.eventRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

func (d Database) JobRepo() *JobRepo {
	return d.jobRepo
}

func (d Database) ServiceRepo() *ServiceRepo {
	return d.serviceRepo
}

func (d Database) TeamRepo() *TeamRepo {
	return d.teamRepo
}

func (d Database) PartnerRepo() *PartnerRepo {
	return d.partnerRepo
}

func (d Database) HallOfFameRepo() *HallOfFameRepo {
	return d.hallOfFameRepo
}

func (d Database) SuccessStoryRepo() *SuccessStoryRepo {
	return d.successStoryRepo
}

func (d Database) SubscriberRepo() *SubscriberRepo {
	return d.subscriberRepo
}

func (d Database) MediaRepo() *MediaRepo {
	return d.mediaRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}

func (d Database) AnalyticsRepo() *AnalyticsRepo {
	return d.analyticsRepo
}

func (d Database) ContactMessageRepo() *ContactMessageRepo {
	return d.contactMessageRepo
}

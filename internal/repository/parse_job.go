package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/luis-carvajal/invoice-extractor/constants"
	"github.com/luis-carvajal/invoice-extractor/gen/ent"
)

type ParseJobRepository interface {
	Start(ctx context.Context, sourcePath, format string) (uuid.UUID, error)
	MarkTextOK(ctx context.Context, jobID uuid.UUID) error
	FinishParsed(ctx context.Context, jobID uuid.UUID, templateName, rawText string) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
	AttachFile(ctx context.Context, jobID, fileID uuid.UUID) error
}

type parseJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewParseJobRepository(entc *ent.Client, log *slog.Logger) ParseJobRepository {
	return &parseJobRepo{ent: entc, log: log}
}

func (r *parseJobRepo) Start(ctx context.Context, sourcePath, format string) (uuid.UUID, error) {
	job, err := r.ent.ParseJob.
		Create().
		SetSourcePath(sourcePath).
		SetFormat(format).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job start failed", "source_path", sourcePath, "err", err)
		return uuid.Nil, err
	}
	r.log.Info("parse_job started", "job_id", job.ID, "source_path", sourcePath, "format", format)
	return job.ID, nil
}

func (r *parseJobRepo) MarkTextOK(ctx context.Context, jobID uuid.UUID) error {
	err := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusTextOK)).
		Exec(ctx)
	if err != nil {
		r.log.Error("parse_job update(TEXT_OK) failed", "job_id", jobID, "err", err)
	}
	return err
}

func (r *parseJobRepo) FinishParsed(ctx context.Context, jobID uuid.UUID, templateName, rawText string) error {
	_, err := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetTemplateName(templateName).
		SetRawText(rawText).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusParsed)).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job finish(PARSED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("parse_job finished", "job_id", jobID, "template", templateName)
	return nil
}

func (r *parseJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("parse_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

func (r *parseJobRepo) AttachFile(ctx context.Context, jobID, fileID uuid.UUID) error {
	err := r.ent.ParseJob.UpdateOneID(jobID).SetFileID(fileID).Exec(ctx)
	if err != nil {
		r.log.Error("parse_job attach file failed", "job_id", jobID, "file_id", fileID, "err", err)
	}
	return err
}
